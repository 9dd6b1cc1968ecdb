package openrouter

import "testing"

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if c := NewClient(Config{APIKey: "  "}); c != nil {
		t.Fatal("expected nil client without an api key")
	}
}

func TestNewClientWithConfig(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{
		APIKey:   "test-key",
		BaseURL:  "https://openrouter.ai/api/v1/",
		SiteURL:  "https://example.test",
		SiteName: "recruiting-agent",
	})
	if c == nil {
		t.Fatal("expected client")
	}
}
