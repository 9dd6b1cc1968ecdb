package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
	openrouterx "github.com/talentforge/recruiting-agent/pkg/openrouter"
)

// Config declares the model deployment: ordered fallback candidates per
// interaction type, the declared-unavailable set, and the shared client
// settings used when a descriptor is turned into a callable chat model.
//
// Candidate order matters: the first entry is the preferred model, the rest
// are fallbacks tried in order when earlier entries are declared unavailable.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	VoiceModels []string `envconfig:"VOICE_MODELS" split_words:"true" default:"google/gemini-2.0-flash-live,google/gemini-1.5-pro-latest"`
	TextModels  []string `envconfig:"TEXT_MODELS" split_words:"true" default:"google/gemini-1.5-pro-latest,google/gemini-1.5-flash-latest"`

	// UnavailableModels is the deployment-declared outage list. Live probing,
	// if any, is an external collaborator that rewrites this set out of band.
	UnavailableModels []string `envconfig:"UNAVAILABLE_MODELS" split_words:"true"`

	// Per-role model overrides. Empty means the role uses the bundle's
	// resolved model.
	CoordinatorModel string `envconfig:"COORDINATOR_MODEL" split_words:"true"`
	BDModel          string `envconfig:"BD_MODEL" split_words:"true"`
	OutreachModel    string `envconfig:"OUTREACH_MODEL" split_words:"true"`
	ContentModel     string `envconfig:"CONTENT_MODEL" split_words:"true"`
	MatchingModel    string `envconfig:"MATCHING_MODEL" split_words:"true"`
	SearchModel      string `envconfig:"SEARCH_MODEL" split_words:"true"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: api key is required", contractx.ErrValidation)
	}
	if len(trimAll(c.VoiceModels)) == 0 {
		return fmt.Errorf("%w: at least one voice model candidate is required", contractx.ErrValidation)
	}
	if len(trimAll(c.TextModels)) == 0 {
		return fmt.Errorf("%w: at least one text model candidate is required", contractx.ErrValidation)
	}
	return nil
}

// RoleModelID returns the configured override model id for a role, or "".
func (c Config) RoleModelID(role contractx.AgentRole) string {
	switch role {
	case contractx.RoleCoordinator:
		return strings.TrimSpace(c.CoordinatorModel)
	case contractx.RoleBD:
		return strings.TrimSpace(c.BDModel)
	case contractx.RoleOutreach:
		return strings.TrimSpace(c.OutreachModel)
	case contractx.RoleContent:
		return strings.TrimSpace(c.ContentModel)
	case contractx.RoleMatching:
		return strings.TrimSpace(c.MatchingModel)
	case contractx.RoleSearchFallback:
		return strings.TrimSpace(c.SearchModel)
	default:
		return ""
	}
}

// OpenRouterFor builds the client config for one resolved descriptor.
func (c Config) OpenRouterFor(desc contractx.ModelDescriptor) openrouterx.Config {
	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              desc.ID,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        c.Temperature,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
