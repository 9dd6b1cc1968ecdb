package detect

import (
	"testing"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

func signalByName(t *testing.T, signals contractx.Signals, name contractx.SignalName) contractx.Signal {
	t.Helper()
	for _, s := range signals {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("signal %s not produced", name)
	return contractx.Signal{}
}

func TestExtractEmptyContextAllNegative(t *testing.T) {
	t.Parallel()

	e := NewExtractor(DefaultConfig())
	signals := e.Extract(contractx.RequestContext{})

	if len(signals) != contractx.SignalCount {
		t.Fatalf("expected %d signals, got %d", contractx.SignalCount, len(signals))
	}
	for _, s := range signals {
		if s.Verdict {
			t.Fatalf("expected negative verdict for %s on empty context", s.Name)
		}
	}
	if signals.AnyPositive() {
		t.Fatal("empty context must not fire any signal")
	}
}

func TestExtractHeaderSignal(t *testing.T) {
	t.Parallel()

	e := NewExtractor(DefaultConfig())

	tests := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{"audio content type", map[string]string{"content-type": "audio/wav"}, true},
		{"multipart audio", map[string]string{"Content-Type": "multipart/audio; boundary=x"}, true},
		{"voice marker true", map[string]string{"x-voice-interaction": "true"}, true},
		{"voice marker yes", map[string]string{"X-Voice-Interaction": "yes"}, true},
		{"voice marker false", map[string]string{"x-voice-interaction": "false"}, false},
		{"webrtc presence", map[string]string{"x-webrtc": ""}, true},
		{"json content type", map[string]string{"content-type": "application/json"}, false},
		{"nil headers", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			signals := e.Extract(contractx.RequestContext{Headers: tt.headers})
			got := signalByName(t, signals, contractx.SignalHeader).Verdict
			if got != tt.want {
				t.Fatalf("header verdict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractEnvironmentSignal(t *testing.T) {
	t.Parallel()

	e := NewExtractor(DefaultConfig())

	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"voice interaction on", map[string]string{"VOICE_INTERACTION": "true"}, true},
		{"audio input 1", map[string]string{"AUDIO_INPUT": "1"}, true},
		{"speech recognition on", map[string]string{"SPEECH_RECOGNITION": "on"}, true},
		{"voice mode yes", map[string]string{"RECRUITING_AGENT_VOICE_MODE": "yes"}, true},
		{"flag off", map[string]string{"VOICE_INTERACTION": "off"}, false},
		{"unrelated flag", map[string]string{"OTHER": "true"}, false},
		{"nil env", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			signals := e.Extract(contractx.RequestContext{Env: tt.env})
			got := signalByName(t, signals, contractx.SignalEnvironment).Verdict
			if got != tt.want {
				t.Fatalf("environment verdict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractInputFormatSignal(t *testing.T) {
	t.Parallel()

	e := NewExtractor(DefaultConfig())

	binary := make([]byte, 32)
	for i := range binary {
		binary[i] = 0xFF
	}

	tests := []struct {
		name      string
		inputName string
		inputData []byte
		want      bool
	}{
		{"wav filename", "recording.WAV", nil, true},
		{"mp3 filename", "note.mp3", nil, true},
		{"text filename", "resume.pdf", nil, false},
		{"binary payload", "", binary, true},
		{"utf8 payload", "", []byte("plain text body, long enough to probe"), false},
		{"short binary below floor", "", []byte{0xFF, 0xFE}, false},
		{"no input", "", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			signals := e.Extract(contractx.RequestContext{InputName: tt.inputName, InputData: tt.inputData})
			got := signalByName(t, signals, contractx.SignalInputFormat).Verdict
			if got != tt.want {
				t.Fatalf("input_format verdict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractURLSignal(t *testing.T) {
	t.Parallel()

	e := NewExtractor(DefaultConfig())

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"voice stream path", "/api/voice/stream", true},
		{"uppercase segment", "/API/VOICE", true},
		{"call path", "/call/start", true},
		{"plain chat", "/chat", false},
		{"text path", "/text", false},
		{"empty url", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			signals := e.Extract(contractx.RequestContext{URL: tt.url})
			got := signalByName(t, signals, contractx.SignalURL).Verdict
			if got != tt.want {
				t.Fatalf("url verdict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractUserAgentSignal(t *testing.T) {
	t.Parallel()

	e := NewExtractor(DefaultConfig())

	tests := []struct {
		name      string
		userAgent string
		want      bool
	}{
		{"voice app", "AcmeVoiceClient/2.1", true},
		{"webrtc app", "webrtc-gateway", true},
		{"browser", "Mozilla/5.0", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			signals := e.Extract(contractx.RequestContext{UserAgent: tt.userAgent})
			got := signalByName(t, signals, contractx.SignalUserAgent).Verdict
			if got != tt.want {
				t.Fatalf("user_agent verdict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDetectorsAreIndependent(t *testing.T) {
	t.Parallel()

	e := NewExtractor(DefaultConfig())

	// Voice-indicative url only: no other detector may fire from it.
	signals := e.Extract(contractx.RequestContext{URL: "/api/voice/stream"})
	for _, s := range signals {
		want := s.Name == contractx.SignalURL
		if s.Verdict != want {
			t.Fatalf("signal %s verdict = %v, want %v", s.Name, s.Verdict, want)
		}
	}
	if got := signals.Fired(); len(got) != 1 || got[0] != contractx.SignalURL {
		t.Fatalf("unexpected fired set: %v", got)
	}
}
