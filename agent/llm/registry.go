package llm

import (
	"fmt"
	"strings"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

// Registry resolves an interaction type (or a forced model id) to a concrete,
// available model descriptor via a static ordered candidate list.
//
// The registry is read-only after construction and safe for concurrent use.
// It replaces an earlier hard-coded model id that took every voice session
// down when the model became unavailable: the fallback order is now explicit,
// inspectable and testable on its own.
type Registry struct {
	descriptors map[string]contractx.ModelDescriptor
	candidates  map[contractx.InteractionType][]string
}

var _ contractx.Resolver = (*Registry)(nil)

// NewRegistry builds a registry from the deployment config. Voice candidates
// are declared audio-capable with streaming and turn detection; text
// candidates are text-only with streaming. A model listed for both types
// keeps its voice capability set.
func NewRegistry(cfg Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	unavailable := make(map[string]struct{}, len(cfg.UnavailableModels))
	for _, id := range trimAll(cfg.UnavailableModels) {
		unavailable[id] = struct{}{}
	}

	r := &Registry{
		descriptors: make(map[string]contractx.ModelDescriptor),
		candidates:  make(map[contractx.InteractionType][]string, 2),
	}

	voiceCaps := contractx.Capabilities{Streaming: true, TurnDetection: true, AudioIO: true, TextIO: true}
	textCaps := contractx.Capabilities{Streaming: true, TextIO: true}

	for _, id := range trimAll(cfg.VoiceModels) {
		r.register(id, voiceCaps, unavailable)
		r.candidates[contractx.InteractionVoice] = append(r.candidates[contractx.InteractionVoice], id)
	}
	for _, id := range trimAll(cfg.TextModels) {
		r.register(id, textCaps, unavailable)
		r.candidates[contractx.InteractionText] = append(r.candidates[contractx.InteractionText], id)
	}

	return r, nil
}

// NewRegistryFromDescriptors builds a registry from explicit descriptors and
// candidate lists. Used by tests and by deployments that do not configure
// through the environment.
func NewRegistryFromDescriptors(
	descriptors []contractx.ModelDescriptor,
	candidates map[contractx.InteractionType][]string,
) (*Registry, error) {
	r := &Registry{
		descriptors: make(map[string]contractx.ModelDescriptor, len(descriptors)),
		candidates:  make(map[contractx.InteractionType][]string, len(candidates)),
	}
	for _, d := range descriptors {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: descriptor id is empty", contractx.ErrValidation)
		}
		d.ID = id
		r.descriptors[id] = d
	}
	for t, ids := range candidates {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: interaction type=%q", contractx.ErrValidation, t)
		}
		for _, id := range trimAll(ids) {
			if _, ok := r.descriptors[id]; !ok {
				return nil, fmt.Errorf("%w: candidate %q has no descriptor", contractx.ErrValidation, id)
			}
			r.candidates[t] = append(r.candidates[t], id)
		}
	}
	return r, nil
}

func (r *Registry) register(id string, caps contractx.Capabilities, unavailable map[string]struct{}) {
	// First registration wins the capability set.
	if _, ok := r.descriptors[id]; ok {
		return
	}
	_, down := unavailable[id]
	r.descriptors[id] = contractx.ModelDescriptor{
		ID:         id,
		Capability: caps,
		Available:  !down,
	}
}

// Descriptor returns a registered descriptor by id.
func (r *Registry) Descriptor(id string) (contractx.ModelDescriptor, bool) {
	d, ok := r.descriptors[strings.TrimSpace(id)]
	return d, ok
}

// Candidates returns the declared fallback order for a type, preferred first.
func (r *Registry) Candidates(t contractx.InteractionType) []contractx.ModelDescriptor {
	ids := r.candidates[t]
	out := make([]contractx.ModelDescriptor, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.descriptors[id])
	}
	return out
}

// Resolve returns the descriptor to use for one request.
//
// A forced model id must be registered (ErrUnknownModel otherwise) and is
// returned regardless of the candidate lists. Without a forced id the first
// available candidate for the type wins; a fully unavailable list is a fatal
// configuration error (ErrNoAvailableModel), surfaced immediately and never
// retried here.
func (r *Registry) Resolve(t contractx.InteractionType, forcedModelID string) (contractx.ModelDescriptor, error) {
	if forced := strings.TrimSpace(forcedModelID); forced != "" {
		desc, ok := r.descriptors[forced]
		if !ok {
			return contractx.ModelDescriptor{}, fmt.Errorf("%w: forced model id=%q", contractx.ErrUnknownModel, forced)
		}
		if !desc.Available {
			return contractx.ModelDescriptor{}, fmt.Errorf("%w: forced model id=%q is declared unavailable", contractx.ErrNoAvailableModel, forced)
		}
		return desc, nil
	}

	if !t.Valid() {
		return contractx.ModelDescriptor{}, fmt.Errorf("%w: interaction type=%q", contractx.ErrValidation, t)
	}

	for _, id := range r.candidates[t] {
		if desc := r.descriptors[id]; desc.Available {
			return desc, nil
		}
	}
	return contractx.ModelDescriptor{}, fmt.Errorf("%w: type=%s, candidates=%d", contractx.ErrNoAvailableModel, t, len(r.candidates[t]))
}
