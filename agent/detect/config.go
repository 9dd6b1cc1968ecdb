package detect

import "strings"

// Config is the detector vocabulary. It is an explicit immutable value passed
// at construction; the extractor never reads process environment or other
// hidden globals, so tests stay deterministic and parallel-safe.
type Config struct {
	AudioContentTypePrefixes []string `envconfig:"AUDIO_CONTENT_TYPE_PREFIXES" split_words:"true" default:"audio/,multipart/audio"`
	VoiceMarkerHeader        string   `envconfig:"VOICE_MARKER_HEADER" split_words:"true" default:"x-voice-interaction"`
	VoicePresenceHeaders     []string `envconfig:"VOICE_PRESENCE_HEADERS" split_words:"true" default:"x-webrtc,x-voice-api,x-audio-stream"`
	VoiceEnvFlags            []string `envconfig:"VOICE_ENV_FLAGS" split_words:"true" default:"VOICE_INTERACTION,AUDIO_INPUT,SPEECH_RECOGNITION,RECRUITING_AGENT_VOICE_MODE"`
	AudioExtensions          []string `envconfig:"AUDIO_EXTENSIONS" split_words:"true" default:".wav,.mp3,.m4a,.ogg,.flac,.aac"`
	VoiceURLSegments         []string `envconfig:"VOICE_URL_SEGMENTS" split_words:"true" default:"/voice,/audio,/speech,/call,/phone,/webrtc,/stream,/live,/conversation"`
	VoiceUserAgentKeywords   []string `envconfig:"VOICE_USER_AGENT_KEYWORDS" split_words:"true" default:"voice,audio,speech,call,phone,webrtc,stream,live,conversation"`

	// MinBinaryProbeBytes is the minimum payload size before the raw-bytes
	// probe may declare a non-text binary input.
	MinBinaryProbeBytes int `envconfig:"MIN_BINARY_PROBE_BYTES" split_words:"true" default:"16"`
}

// DefaultConfig returns the vocabulary the original deployment shipped with.
func DefaultConfig() Config {
	return Config{
		AudioContentTypePrefixes: []string{"audio/", "multipart/audio"},
		VoiceMarkerHeader:        "x-voice-interaction",
		VoicePresenceHeaders:     []string{"x-webrtc", "x-voice-api", "x-audio-stream"},
		VoiceEnvFlags:            []string{"VOICE_INTERACTION", "AUDIO_INPUT", "SPEECH_RECOGNITION", "RECRUITING_AGENT_VOICE_MODE"},
		AudioExtensions:          []string{".wav", ".mp3", ".m4a", ".ogg", ".flac", ".aac"},
		VoiceURLSegments:         []string{"/voice", "/audio", "/speech", "/call", "/phone", "/webrtc", "/stream", "/live", "/conversation"},
		VoiceUserAgentKeywords:   []string{"voice", "audio", "speech", "call", "phone", "webrtc", "stream", "live", "conversation"},
		MinBinaryProbeBytes:      16,
	}
}

func (c Config) normalized() Config {
	c.AudioContentTypePrefixes = lowerAll(c.AudioContentTypePrefixes)
	c.VoiceMarkerHeader = strings.ToLower(strings.TrimSpace(c.VoiceMarkerHeader))
	c.VoicePresenceHeaders = lowerAll(c.VoicePresenceHeaders)
	c.AudioExtensions = lowerAll(c.AudioExtensions)
	c.VoiceURLSegments = lowerAll(c.VoiceURLSegments)
	c.VoiceUserAgentKeywords = lowerAll(c.VoiceUserAgentKeywords)
	if c.MinBinaryProbeBytes <= 0 {
		c.MinBinaryProbeBytes = 16
	}
	return c
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// truthy matches the original deployment's accepted flag values.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
