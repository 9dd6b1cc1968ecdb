package contract

import "strings"

// InteractionType is the routing decision for one inbound request: the same
// agent roles are composed either on a voice-capable model or a text model.
type InteractionType string

const (
	InteractionVoice InteractionType = "voice"
	InteractionText  InteractionType = "text"
)

func (t InteractionType) Valid() bool {
	return t == InteractionVoice || t == InteractionText
}

// AgentRole identifies one member of the bundle's fixed role set.
type AgentRole string

const (
	RoleCoordinator    AgentRole = "coordinator"
	RoleBD             AgentRole = "business_development"
	RoleOutreach       AgentRole = "candidate_outreach"
	RoleContent        AgentRole = "marketing_content"
	RoleMatching       AgentRole = "backend_matching"
	RoleSearchFallback AgentRole = "search_fallback"
)

// SpecialistRoles lists every role except the coordinator, in bundle order.
var SpecialistRoles = []AgentRole{
	RoleBD,
	RoleOutreach,
	RoleContent,
	RoleMatching,
	RoleSearchFallback,
}

func (r AgentRole) Valid() bool {
	if r == RoleCoordinator {
		return true
	}
	for _, role := range SpecialistRoles {
		if r == role {
			return true
		}
	}
	return false
}

// RequestContext is the immutable per-request snapshot handed in by the
// transport layer. The core never parses HTTP itself; headers, url and body
// arrive pre-extracted. A zero value is valid and classifies as text.
type RequestContext struct {
	Headers   map[string]string `json:"headers,omitempty"`
	URL       string            `json:"url,omitempty"`
	UserAgent string            `json:"user_agent,omitempty"`
	InputName string            `json:"input_name,omitempty"`
	InputData []byte            `json:"input_data,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// Header returns a header value by case-insensitive key.
func (rc RequestContext) Header(key string) (string, bool) {
	for k, v := range rc.Headers {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// SignalName identifies one of the five voice detectors.
type SignalName string

const (
	SignalHeader      SignalName = "header"
	SignalEnvironment SignalName = "environment"
	SignalInputFormat SignalName = "input_format"
	SignalURL         SignalName = "url"
	SignalUserAgent   SignalName = "user_agent"
)

// SignalCount is the number of signals every extraction produces, even when
// all inputs are missing.
const SignalCount = 5

// Signal is one independent boolean verdict derived from a single aspect of
// the request context.
type Signal struct {
	Name    SignalName `json:"name"`
	Verdict bool       `json:"verdict"`
}

// Signals is the fixed-size extraction result, in detector order.
type Signals [SignalCount]Signal

// AnyPositive reports whether at least one detector fired.
func (s Signals) AnyPositive() bool {
	for _, sig := range s {
		if sig.Verdict {
			return true
		}
	}
	return false
}

// Fired returns the names of the detectors that fired, in detector order.
func (s Signals) Fired() []SignalName {
	var fired []SignalName
	for _, sig := range s {
		if sig.Verdict {
			fired = append(fired, sig.Name)
		}
	}
	return fired
}

// Capabilities is the static capability surface of a model endpoint, exposed
// so a transport layer can adapt streaming/UI behavior.
type Capabilities struct {
	Streaming     bool `json:"streaming"`
	TurnDetection bool `json:"turn_detection"`
	AudioIO       bool `json:"audio_io"`
	TextIO        bool `json:"text_io"`
}

// ModelDescriptor is read-only metadata about a callable model endpoint.
// Availability is declared by deployment configuration, never probed live.
type ModelDescriptor struct {
	ID         string       `json:"id"`
	Capability Capabilities `json:"capability"`
	Available  bool         `json:"available"`
}

// Capabilities returns the declared capability set.
func (d ModelDescriptor) Capabilities() Capabilities {
	return d.Capability
}

// ServedType derives the interaction type a model is declared to serve:
// audio-capable models serve voice, everything else serves text.
func (d ModelDescriptor) ServedType() InteractionType {
	if d.Capability.AudioIO {
		return InteractionVoice
	}
	return InteractionText
}

// AgentSpec binds one role to its resolved model and prompt/tool bindings.
type AgentSpec struct {
	Role         AgentRole       `json:"role"`
	Model        ModelDescriptor `json:"model"`
	SystemPrompt string          `json:"-"`
	Tools        []string        `json:"tools,omitempty"`
}

// Attachment is an opaque payload forwarded with a submit. The core never
// decodes attachment content.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"-"`
}

// SubmitRequest is the bundle's single entry-point input.
type SubmitRequest struct {
	Query       string       `json:"query"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// SubmitResponse carries the model reply plus routing introspection for the
// caller and for tests.
type SubmitResponse struct {
	Text             string         `json:"text"`
	StructuredOutput map[string]any `json:"structured_output,omitempty"`
	HandledBy        AgentRole      `json:"handled_by"`
	ModelID          string         `json:"model_id"`
}
