package specialist

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

type fakeChatModel struct {
	responses []*schema.Message
	err       error
	idx       int
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeChatModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return f, nil
}

func testSpec(role contractx.AgentRole) contractx.AgentSpec {
	return contractx.AgentSpec{
		Role:         role,
		Model:        contractx.ModelDescriptor{ID: "test-model", Available: true},
		SystemPrompt: "role prompt",
	}
}

func TestSpecialistRunSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		responses: []*schema.Message{
			{Content: `{"message":"Here is your outreach plan.","structured_output":{"channels":["email","linkedin"]}}`},
		},
	}

	spec, err := New(context.Background(), fake, testSpec(contractx.RoleOutreach))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := spec.Run(context.Background(), contractx.SubmitRequest{
		Query: "design an outreach strategy for senior engineers",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.Text != "Here is your outreach plan." {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
	if resp.HandledBy != contractx.RoleOutreach {
		t.Fatalf("HandledBy = %s, want outreach", resp.HandledBy)
	}
	if resp.ModelID != "test-model" {
		t.Fatalf("ModelID = %s, want test-model", resp.ModelID)
	}
	if resp.StructuredOutput == nil {
		t.Fatal("expected structured output")
	}
}

func TestSpecialistRunEmptyMessage(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{
		responses: []*schema.Message{
			{Content: `{"message":"   "}`},
		},
	}

	spec, err := New(context.Background(), fake, testSpec(contractx.RoleBD))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = spec.Run(context.Background(), contractx.SubmitRequest{Query: "find funded companies"})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestSpecialistRunUpstreamFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{err: errors.New("quota exceeded")}

	spec, err := New(context.Background(), fake, testSpec(contractx.RoleContent))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = spec.Run(context.Background(), contractx.SubmitRequest{Query: "write a job description"})
	if !errors.Is(err, contractx.ErrUpstreamModel) {
		t.Fatalf("expected ErrUpstreamModel, got %v", err)
	}
}

func TestSpecialistRunEmptyQuery(t *testing.T) {
	t.Parallel()

	spec, err := New(context.Background(), &fakeChatModel{}, testSpec(contractx.RoleMatching))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = spec.Run(context.Background(), contractx.SubmitRequest{Query: "  "})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNewRequiresPrompt(t *testing.T) {
	t.Parallel()

	spec := testSpec(contractx.RoleSearchFallback)
	spec.SystemPrompt = " "

	_, err := New(context.Background(), &fakeChatModel{}, spec)
	if !errors.Is(err, contractx.ErrPromptMissing) {
		t.Fatalf("expected ErrPromptMissing, got %v", err)
	}
}

func TestNewRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	spec := testSpec(contractx.AgentRole("mystery"))

	_, err := New(context.Background(), &fakeChatModel{}, spec)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
