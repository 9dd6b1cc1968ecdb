package contract

import "context"

// Extractor turns a request context into the fixed signal set. Extraction
// never fails; missing inputs yield negative verdicts.
type Extractor interface {
	Extract(rc RequestContext) Signals
}

// DescriptorSource resolves registered model descriptors by id. The classifier
// uses it to derive the served type of a forced model id without depending on
// the full registry.
type DescriptorSource interface {
	Descriptor(id string) (ModelDescriptor, bool)
}

// Resolver maps an interaction type (or a forced model id) to a concrete,
// available model descriptor.
type Resolver interface {
	DescriptorSource
	Resolve(t InteractionType, forcedModelID string) (ModelDescriptor, error)
}

// Specialist is one role-bound agent inside a bundle.
type Specialist interface {
	Role() AgentRole
	Spec() AgentSpec
	Run(ctx context.Context, req SubmitRequest) (SubmitResponse, error)
}

// Bundle is the composed coordinator + specialist set behind one entry point.
// A bundle belongs to exactly one logical session and is not safe for
// concurrent use.
type Bundle interface {
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)
	Spec(role AgentRole) (AgentSpec, bool)
	Model() ModelDescriptor
}
