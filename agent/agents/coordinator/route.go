package coordinator

import (
	"strings"
	"unicode"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

// routeTable maps query keywords to the specialist that owns the topic.
// Routing is deterministic and model-free so exactly one upstream model
// attempt happens per submit and the handled-by introspection is stable.
// First match in table order wins; unmatched queries stay with the
// coordinator role. Short tokens like "bd" match whole words only, longer
// keywords match as substrings.
var routeTable = []struct {
	role     contractx.AgentRole
	keywords []string
	words    []string
}{
	{contractx.RoleBD, []string{"funding", "business development", "target compan", "blockchain"}, []string{"bd"}},
	{contractx.RoleOutreach, []string{"outreach", "candidate engagement", "messaging", "follow-up", "follow up"}, nil},
	{contractx.RoleContent, []string{"job description", "branding", "marketing content", "social media", "campaign"}, nil},
	{contractx.RoleMatching, []string{"integration", "automation", "tracking system"}, []string{"ats", "crm"}},
	{contractx.RoleSearchFallback, []string{"latest", "current", "research", "look up", "search", "market data"}, nil},
}

func routeRole(query string) contractx.AgentRole {
	lower := strings.ToLower(query)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, entry := range routeTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.role
			}
		}
		for _, w := range entry.words {
			for _, field := range fields {
				if field == w {
					return entry.role
				}
			}
		}
	}
	return contractx.RoleCoordinator
}
