package detect

import (
	"strings"
	"unicode/utf8"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

// Extractor evaluates the five voice detectors over a request context. Each
// detector reads only its own designated field and tolerates missing input by
// returning a negative verdict, never an error.
type Extractor struct {
	cfg Config
}

var _ contractx.Extractor = (*Extractor)(nil)

func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: cfg.normalized()}
}

// Extract always produces all five signals in detector order, even when every
// verdict is negative.
func (e *Extractor) Extract(rc contractx.RequestContext) contractx.Signals {
	return contractx.Signals{
		{Name: contractx.SignalHeader, Verdict: e.fromHeaders(rc.Headers)},
		{Name: contractx.SignalEnvironment, Verdict: e.fromEnvironment(rc.Env)},
		{Name: contractx.SignalInputFormat, Verdict: e.fromInputFormat(rc.InputName, rc.InputData)},
		{Name: contractx.SignalURL, Verdict: e.fromURL(rc.URL)},
		{Name: contractx.SignalUserAgent, Verdict: e.fromUserAgent(rc.UserAgent)},
	}
}

func (e *Extractor) fromHeaders(headers map[string]string) bool {
	if len(headers) == 0 {
		return false
	}
	for key, value := range headers {
		k := strings.ToLower(strings.TrimSpace(key))
		switch {
		case k == "content-type":
			ct := strings.ToLower(value)
			for _, prefix := range e.cfg.AudioContentTypePrefixes {
				if strings.Contains(ct, prefix) {
					return true
				}
			}
		case k == e.cfg.VoiceMarkerHeader:
			if truthy(value) {
				return true
			}
		default:
			for _, presence := range e.cfg.VoicePresenceHeaders {
				if k == presence {
					return true
				}
			}
		}
	}
	return false
}

func (e *Extractor) fromEnvironment(env map[string]string) bool {
	if len(env) == 0 {
		return false
	}
	for _, flag := range e.cfg.VoiceEnvFlags {
		if truthy(env[flag]) {
			return true
		}
	}
	return false
}

func (e *Extractor) fromInputFormat(name string, data []byte) bool {
	if name != "" {
		lower := strings.ToLower(name)
		for _, ext := range e.cfg.AudioExtensions {
			if strings.Contains(lower, ext) {
				return true
			}
		}
	}
	// Raw payload probe: a payload past the size floor that does not decode
	// as UTF-8 text is treated as binary audio-like input.
	if len(data) >= e.cfg.MinBinaryProbeBytes && !utf8.Valid(data) {
		return true
	}
	return false
}

func (e *Extractor) fromURL(url string) bool {
	if url == "" {
		return false
	}
	lower := strings.ToLower(url)
	for _, segment := range e.cfg.VoiceURLSegments {
		if strings.Contains(lower, segment) {
			return true
		}
	}
	return false
}

func (e *Extractor) fromUserAgent(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	lower := strings.ToLower(userAgent)
	for _, keyword := range e.cfg.VoiceUserAgentKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
