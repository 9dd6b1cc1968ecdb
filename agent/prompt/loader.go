package prompt

import (
	_ "embed"
	"strings"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

var (
	//go:embed template/coordinator.txt
	coordinatorRaw string

	//go:embed template/business_development.txt
	bdRaw string

	//go:embed template/candidate_outreach.txt
	outreachRaw string

	//go:embed template/marketing_content.txt
	contentRaw string

	//go:embed template/backend_matching.txt
	matchingRaw string

	//go:embed template/search_fallback.txt
	searchRaw string
)

// PromptSet holds the loaded system prompt per role.
type PromptSet struct {
	prompts map[contractx.AgentRole]string
}

// LoadPromptSet returns trimmed prompts for every role. Safe to call
// concurrently; the embed is compile-time and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		prompts: map[contractx.AgentRole]string{
			contractx.RoleCoordinator:    strings.TrimSpace(coordinatorRaw),
			contractx.RoleBD:             strings.TrimSpace(bdRaw),
			contractx.RoleOutreach:       strings.TrimSpace(outreachRaw),
			contractx.RoleContent:        strings.TrimSpace(contentRaw),
			contractx.RoleMatching:       strings.TrimSpace(matchingRaw),
			contractx.RoleSearchFallback: strings.TrimSpace(searchRaw),
		},
	}
}

// For returns the system prompt for a role.
func (p PromptSet) For(role contractx.AgentRole) (string, bool) {
	s, ok := p.prompts[role]
	return s, ok && s != ""
}
