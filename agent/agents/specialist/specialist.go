package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

// Specialist is one role agent bound to a resolved model. It makes exactly
// one model attempt per Run; retries, backoff and timeouts belong to the
// model-calling collaborator.
type Specialist struct {
	spec   contractx.AgentSpec
	runner compose.Runnable[map[string]any, llmOutput]
}

var _ contractx.Specialist = (*Specialist)(nil)

type llmOutput struct {
	Message          string         `json:"message"`
	StructuredOutput map[string]any `json:"structured_output,omitempty"`
}

// New compiles the structured-output graph for one role. Compilation wires
// the pipeline only; no network I/O happens until Run.
func New(ctx context.Context, chatModel einomodel.BaseChatModel, spec contractx.AgentSpec) (*Specialist, error) {
	if !spec.Role.Valid() {
		return nil, fmt.Errorf("%w: role=%q", contractx.ErrValidation, spec.Role)
	}
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required for role=%s", contractx.ErrValidation, spec.Role)
	}
	if strings.TrimSpace(spec.SystemPrompt) == "" {
		return nil, fmt.Errorf("%w: role=%s", contractx.ErrPromptMissing, spec.Role)
	}

	runner, err := compileStructuredGraph[llmOutput](ctx, chatModel, spec.SystemPrompt, string(spec.Role)+".model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile graph for role=%s: %v", contractx.ErrUpstreamModel, spec.Role, err)
	}

	return &Specialist{spec: spec, runner: runner}, nil
}

func (s *Specialist) Role() contractx.AgentRole {
	return s.spec.Role
}

func (s *Specialist) Spec() contractx.AgentSpec {
	return s.spec
}

// Run makes the single model attempt for one submit. Attachment content is
// passed through by name and content type only; the core never decodes it.
func (s *Specialist) Run(ctx context.Context, req contractx.SubmitRequest) (contractx.SubmitResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return contractx.SubmitResponse{}, fmt.Errorf("%w: query is required", contractx.ErrValidation)
	}

	payload := map[string]any{
		"query":       req.Query,
		"attachments": summarizeAttachments(req.Attachments),
		"tools":       s.spec.Tools,
	}
	input, err := json.Marshal(payload)
	if err != nil {
		return contractx.SubmitResponse{}, fmt.Errorf("%w: marshal payload for role=%s: %v", contractx.ErrValidation, s.spec.Role, err)
	}

	out, err := s.runner.Invoke(ctx, map[string]any{
		"input": string(input),
	})
	if err != nil {
		return contractx.SubmitResponse{}, fmt.Errorf("%w: role=%s model=%s: %v", contractx.ErrUpstreamModel, s.spec.Role, s.spec.Model.ID, err)
	}

	message := strings.TrimSpace(out.Message)
	if message == "" {
		return contractx.SubmitResponse{}, fmt.Errorf("%w: role=%s returned an empty message", contractx.ErrSchemaViolation, s.spec.Role)
	}

	return contractx.SubmitResponse{
		Text:             message,
		StructuredOutput: out.StructuredOutput,
		HandledBy:        s.spec.Role,
		ModelID:          s.spec.Model.ID,
	}, nil
}

func summarizeAttachments(attachments []contractx.Attachment) []map[string]any {
	if len(attachments) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, map[string]any{
			"name":         a.Name,
			"content_type": a.ContentType,
			"size_bytes":   len(a.Data),
		})
	}
	return out
}
