package coordinator

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/rs/zerolog/log"

	specialistx "github.com/talentforge/recruiting-agent/agent/agents/specialist"
	classifyx "github.com/talentforge/recruiting-agent/agent/classify"
	contractx "github.com/talentforge/recruiting-agent/agent/contract"
	llmx "github.com/talentforge/recruiting-agent/agent/llm"
	promptx "github.com/talentforge/recruiting-agent/agent/prompt"
	statex "github.com/talentforge/recruiting-agent/agent/state"
	toolx "github.com/talentforge/recruiting-agent/agent/tool"
)

// ModelBuilder turns a resolved descriptor into a callable chat model.
// Building must not perform network I/O; model calls are deferred to first
// use. Tests inject fakes here.
type ModelBuilder func(ctx context.Context, desc contractx.ModelDescriptor) (einomodel.BaseChatModel, error)

// Factory composes agent bundles bound to resolved model descriptors.
type Factory struct {
	cfg      llmx.Config
	resolver contractx.Resolver
	prompts  promptx.PromptSet
	builder  ModelBuilder
}

// NewFactory wires the factory. A nil builder defaults to the OpenRouter
// chat-model constructor from the llm config.
func NewFactory(cfg llmx.Config, resolver contractx.Resolver, builder ModelBuilder) (*Factory, error) {
	if resolver == nil {
		return nil, fmt.Errorf("%w: resolver is required", contractx.ErrValidation)
	}
	if builder == nil {
		builder = func(ctx context.Context, desc contractx.ModelDescriptor) (einomodel.BaseChatModel, error) {
			orCfg := cfg.OpenRouterFor(desc)
			return orCfg.New(ctx)
		}
	}
	return &Factory{
		cfg:      cfg,
		resolver: resolver,
		prompts:  promptx.LoadPromptSet(),
		builder:  builder,
	}, nil
}

// CreateBundle builds one coordinator plus the fixed specialist set, each
// bound to the resolved descriptor unless a per-role override (explicit
// argument first, then configured role model id) supplies another resolved
// model. It fails fast, before any bundle is observable, on an unavailable
// descriptor, a missing prompt, or a model build error.
func (f *Factory) CreateBundle(
	ctx context.Context,
	t contractx.InteractionType,
	desc contractx.ModelDescriptor,
	perRoleOverrides map[contractx.AgentRole]contractx.ModelDescriptor,
	sessionID string,
) (*Bundle, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: interaction type=%q", contractx.ErrValidation, t)
	}
	if !desc.Available {
		return nil, fmt.Errorf("%w: descriptor id=%q is declared unavailable", contractx.ErrNoAvailableModel, desc.ID)
	}

	agents := make(map[contractx.AgentRole]contractx.Specialist, 1+len(contractx.SpecialistRoles))

	roles := append([]contractx.AgentRole{contractx.RoleCoordinator}, contractx.SpecialistRoles...)
	for _, role := range roles {
		roleDesc, err := f.descriptorForRole(role, desc, perRoleOverrides)
		if err != nil {
			return nil, err
		}

		systemPrompt, ok := f.prompts.For(role)
		if !ok {
			return nil, fmt.Errorf("%w: role=%s", contractx.ErrPromptMissing, role)
		}

		chatModel, err := f.builder(ctx, roleDesc)
		if err != nil {
			return nil, fmt.Errorf("%w: build model for role=%s: %v", contractx.ErrUpstreamModel, role, err)
		}

		agent, err := specialistx.New(ctx, chatModel, contractx.AgentSpec{
			Role:         role,
			Model:        roleDesc,
			SystemPrompt: systemPrompt,
			Tools:        toolx.NamesForRole(role),
		})
		if err != nil {
			return nil, err
		}
		agents[role] = agent
	}

	b := &Bundle{
		interaction: t,
		model:       desc,
		agents:      agents,
		session:     statex.NewBundleSession(sessionID, desc.ID),
	}

	runner, err := b.compileSubmitGraph(ctx)
	if err != nil {
		return nil, err
	}
	b.graphRunner = runner

	log.Info().
		Str("session", b.session.SessionID).
		Str("type", string(t)).
		Str("model", desc.ID).
		Msg("bundle created")
	return b, nil
}

// CreateBundleForRequest runs the full pipeline for one inbound request:
// extract -> classify -> resolve -> compose.
func (f *Factory) CreateBundleForRequest(
	ctx context.Context,
	classifier *classifyx.Classifier,
	rc contractx.RequestContext,
	o classifyx.Overrides,
	sessionID string,
) (*Bundle, error) {
	t, err := classifier.Classify(rc, o)
	if err != nil {
		return nil, err
	}
	desc, err := f.resolver.Resolve(t, o.ForcedModelID)
	if err != nil {
		return nil, err
	}
	return f.CreateBundle(ctx, t, desc, nil, sessionID)
}

// descriptorForRole applies the override precedence for one role. Explicit
// overrides must already be resolved (available) descriptors; configured role
// ids go through the resolver so the availability invariant holds everywhere.
func (f *Factory) descriptorForRole(
	role contractx.AgentRole,
	base contractx.ModelDescriptor,
	overrides map[contractx.AgentRole]contractx.ModelDescriptor,
) (contractx.ModelDescriptor, error) {
	if d, ok := overrides[role]; ok {
		if !d.Available {
			return contractx.ModelDescriptor{}, fmt.Errorf("%w: override for role=%s id=%q is declared unavailable", contractx.ErrNoAvailableModel, role, d.ID)
		}
		return d, nil
	}
	if id := f.cfg.RoleModelID(role); id != "" {
		return f.resolver.Resolve(base.ServedType(), id)
	}
	return base, nil
}
