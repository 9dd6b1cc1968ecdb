package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
	statex "github.com/talentforge/recruiting-agent/agent/state"
)

// Bundle is the composed coordinator + specialists behind one entry point.
// It is exclusively owned by one logical session and provides no internal
// synchronization: a caller serving N concurrent conversations builds N
// bundles. Cancelling a pending call means discarding the bundle.
type Bundle struct {
	interaction contractx.InteractionType
	model       contractx.ModelDescriptor
	agents      map[contractx.AgentRole]contractx.Specialist
	session     *statex.BundleSession

	graphRunner compose.Runnable[contractx.SubmitRequest, contractx.SubmitResponse]
}

var _ contractx.Bundle = (*Bundle)(nil)

// Submit routes the query to exactly one role agent and makes a single
// upstream model attempt. A failed call is terminal for that call: the
// bundle returns to idle and the caller may submit again, but no retry or
// model substitution happens here.
func (b *Bundle) Submit(ctx context.Context, req contractx.SubmitRequest) (contractx.SubmitResponse, error) {
	if err := b.session.Begin(); err != nil {
		if errors.Is(err, statex.ErrCallInFlight) {
			return contractx.SubmitResponse{}, fmt.Errorf("%w: session=%s", contractx.ErrBundleBusy, b.session.SessionID)
		}
		return contractx.SubmitResponse{}, err
	}

	resp, err := b.graphRunner.Invoke(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("session", b.session.SessionID).Msg("submit failed")
		if ferr := b.session.Fail(); ferr != nil {
			return contractx.SubmitResponse{}, ferr
		}
		return contractx.SubmitResponse{}, err
	}

	if cerr := b.session.Complete(string(resp.HandledBy), resp.ModelID); cerr != nil {
		return contractx.SubmitResponse{}, cerr
	}
	return resp, nil
}

// Spec exposes the binding for one role, for introspection and tests.
func (b *Bundle) Spec(role contractx.AgentRole) (contractx.AgentSpec, bool) {
	agent, ok := b.agents[role]
	if !ok {
		return contractx.AgentSpec{}, false
	}
	return agent.Spec(), true
}

// Model returns the bundle's resolved descriptor, capability metadata
// included, so a transport layer can adapt streaming/UI behavior.
func (b *Bundle) Model() contractx.ModelDescriptor {
	return b.model
}

// InteractionType returns the classification the bundle was built for. It is
// fixed at creation time; a session is never reclassified mid-conversation.
func (b *Bundle) InteractionType() contractx.InteractionType {
	return b.interaction
}

// SessionID identifies the owning session.
func (b *Bundle) SessionID() string {
	return b.session.SessionID
}

// LastHandledBy reports which role served the most recent completed submit.
func (b *Bundle) LastHandledBy() (contractx.AgentRole, string) {
	return contractx.AgentRole(b.session.LastRole), b.session.LastModelID
}

func (b *Bundle) compileSubmitGraph(ctx context.Context) (compose.Runnable[contractx.SubmitRequest, contractx.SubmitResponse], error) {
	type routedRequest struct {
		Req  contractx.SubmitRequest
		Role contractx.AgentRole
	}

	graph := compose.NewGraph[contractx.SubmitRequest, contractx.SubmitResponse]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, req contractx.SubmitRequest) (contractx.SubmitRequest, error) {
			if strings.TrimSpace(req.Query) == "" {
				return contractx.SubmitRequest{}, fmt.Errorf("%w: query is required", contractx.ErrValidation)
			}
			for _, a := range req.Attachments {
				if strings.TrimSpace(a.Name) == "" {
					return contractx.SubmitRequest{}, fmt.Errorf("%w: attachment name is required", contractx.ErrValidation)
				}
			}
			return req, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("route_role",
		compose.InvokableLambda(func(ctx context.Context, req contractx.SubmitRequest) (routedRequest, error) {
			role := routeRole(req.Query)
			log.Debug().Str("role", string(role)).Msg("routed submit")
			return routedRequest{Req: req, Role: role}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node route_role: %w", err)
	}

	if err := graph.AddLambdaNode("invoke_agent",
		compose.InvokableLambda(func(ctx context.Context, in routedRequest) (contractx.SubmitResponse, error) {
			agent, ok := b.agents[in.Role]
			if !ok {
				return contractx.SubmitResponse{}, fmt.Errorf("%w: no agent for role=%s", contractx.ErrValidation, in.Role)
			}
			return agent.Run(ctx, in.Req)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node invoke_agent: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_response",
		compose.InvokableLambda(func(ctx context.Context, resp contractx.SubmitResponse) (contractx.SubmitResponse, error) {
			if strings.TrimSpace(resp.Text) == "" {
				return contractx.SubmitResponse{}, fmt.Errorf("%w: empty response text", contractx.ErrSchemaViolation)
			}
			return resp, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_response: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "route_role"},
		{"route_role", "invoke_agent"},
		{"invoke_agent", "finalize_response"},
		{"finalize_response", compose.END},
	}
	for _, e := range edges {
		if err := graph.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", e[0], e[1], err)
		}
	}

	return graph.Compile(ctx, compose.WithGraphName("bundle.submit_graph"))
}
