package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

// Tool names declared per role. Execution is an external collaborator:
// funding data, email delivery and live search all live outside this core.
const (
	ToolFetchFundingRounds  = "funding.fetch_recent_rounds"
	ToolFilterBlockchain    = "funding.filter_blockchain_companies"
	ToolPersonalizeOutreach = "outreach.personalize"
	ToolBookMeeting         = "outreach.book_meeting"
	ToolLiveSearch          = "search.live"
)

// Result is the outcome of one tool execution attempt.
type Result struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Executor runs one named tool with its arguments.
type Executor func(ctx context.Context, tool string, args map[string]any) (Result, error)

// Catalog binds tool declarations per role and dispatches execution to
// registered executors. Unregistered tools resolve through the default
// executor, which reports the tool as externally owned rather than failing
// the call.
//
// The submit pipeline only declares tools to the model (InfosForRole,
// NamesForRole); it never executes them. Execute is the host-facing surface:
// when the host application relays a model tool call, it dispatches through
// the catalog it registered executors on.
type Catalog struct {
	executors map[string]Executor
}

func NewCatalog() *Catalog {
	return &Catalog{executors: make(map[string]Executor)}
}

// Register installs a host-provided executor for one tool name. Registration
// happens at composition time, before any bundle is built.
func (c *Catalog) Register(tool string, exec Executor) {
	if tool == "" || exec == nil {
		return
	}
	c.executors[tool] = exec
}

// Execute dispatches a tool call, falling back to the external-collaborator
// default when no executor is registered.
func (c *Catalog) Execute(ctx context.Context, role contractx.AgentRole, tool string, args map[string]any) (Result, error) {
	if exec, ok := c.executors[tool]; ok {
		return exec(ctx, tool, args)
	}
	return DefaultExecutor(role)(ctx, tool, args)
}

// DefaultExecutor reports a tool as unavailable for the role. This mirrors
// the deployment reality: tool backends are wired by the host application.
func DefaultExecutor(role contractx.AgentRole) Executor {
	return func(ctx context.Context, tool string, _ map[string]any) (Result, error) {
		return Result{
			Tool:  tool,
			Error: fmt.Sprintf("tool=%s is unavailable for role=%s", tool, role),
		}, nil
	}
}

// NamesForRole returns the declared tool names for a role, used when binding
// an AgentSpec.
func NamesForRole(role contractx.AgentRole) []string {
	infos := InfosForRole(role)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info != nil && info.Name != "" {
			names = append(names, info.Name)
		}
	}
	return names
}

// InfosForRole returns the eino tool declarations a role's model may request.
func InfosForRole(role contractx.AgentRole) []*schema.ToolInfo {
	switch role {
	case contractx.RoleBD:
		return []*schema.ToolInfo{
			{
				Name: ToolFetchFundingRounds,
				Desc: "Fetch companies with recent funding rounds matching the hiring brief.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"query": {Type: schema.String, Desc: "Natural language funding query", Required: true},
				}),
			},
			{
				Name: ToolFilterBlockchain,
				Desc: "Filter a company list down to blockchain companies.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"companies": {Type: schema.Array, Desc: "Company names to filter", Required: true},
				}),
			},
		}
	case contractx.RoleOutreach:
		return []*schema.ToolInfo{
			{
				Name: ToolPersonalizeOutreach,
				Desc: "Personalize an outreach message for a company or candidate.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"target": {Type: schema.String, Desc: "Company or candidate name", Required: true},
				}),
			},
			{
				Name: ToolBookMeeting,
				Desc: "Book an introduction meeting with a target contact.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"contact": {Type: schema.String, Desc: "Contact identifier", Required: true},
				}),
			},
		}
	case contractx.RoleSearchFallback:
		return []*schema.ToolInfo{
			{
				Name: ToolLiveSearch,
				Desc: "Search the web for current market data and company information.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"query": {Type: schema.String, Desc: "Search query", Required: true},
				}),
			},
		}
	default:
		return nil
	}
}
