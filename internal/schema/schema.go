package schema

import (
	"fmt"
	"strings"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

// Synonyms lists the header words that identify each role.
// Cost, Date and Quantity match by substring; Description matches exactly.
type Synonyms struct {
	Cost        []string
	Date        []string
	Description []string
	Quantity    []string
}

// DefaultSynonyms returns the built-in header vocabulary.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		Cost:        []string{"value", "amount"},
		Date:        []string{"date"},
		Description: []string{"item descriptor", "item name", "item description", "chemical", "description"},
		Quantity:    []string{"quantity", "qty"},
	}
}

// Rule binds a role to a predicate over a normalized header.
type Rule struct {
	Role  model.Role
	Match func(header string) bool
}

// Resolver maps table headers to roles using an ordered rule table.
type Resolver struct {
	rules    []Rule
	synonyms Synonyms
}

// NewResolver builds the rule table from synonyms. Rules are evaluated in
// the order cost, date, description, quantity; a column is claimed by at
// most one role.
func NewResolver(s Synonyms) *Resolver {
	s = Synonyms{
		Cost:        normalizeAll(s.Cost),
		Date:        normalizeAll(s.Date),
		Description: normalizeAll(s.Description),
		Quantity:    normalizeAll(s.Quantity),
	}
	return &Resolver{
		synonyms: s,
		rules: []Rule{
			{Role: model.RoleCost, Match: containsAny(s.Cost)},
			{Role: model.RoleDate, Match: containsAny(s.Date)},
			{Role: model.RoleDescription, Match: equalsAny(s.Description)},
			{Role: model.RoleQuantity, Match: containsAny(s.Quantity)},
		},
	}
}

// Default returns a resolver over DefaultSynonyms.
func Default() *Resolver {
	return NewResolver(DefaultSynonyms())
}

// Rules returns the resolver's rule table.
func (r *Resolver) Rules() []Rule {
	return r.rules
}

// Resolve assigns a column to each role it can and returns the required
// roles left unresolved. For each role the first matching column wins.
// Roles are resolved in rule order and a column claimed by one role is not
// offered to later ones, so a lone "Value Date" header becomes the cost
// column and the table is reported as missing a date.
func (r *Resolver) Resolve(columns []string) (model.ColumnRoleMap, []model.Role) {
	headers := normalizeAll(columns)
	claimed := make([]bool, len(headers))
	roles := make(model.ColumnRoleMap)

	for _, rule := range r.rules {
		for i, h := range headers {
			if claimed[i] || h == "" || !rule.Match(h) {
				continue
			}
			roles[rule.Role] = i
			claimed[i] = true
			break
		}
	}
	return roles, roles.Missing()
}

// Guidance is the message shown when no table in an upload resolves.
func (r *Resolver) Guidance() string {
	return fmt.Sprintf(
		"No valid sheets found. Each sheet needs a header row with a date column (header containing %s), "+
			"a cost column (header containing %s) and an item column (header named %s).",
		quoteJoin(r.synonyms.Date, " or "),
		quoteJoin(r.synonyms.Cost, " or "),
		quoteJoin(r.synonyms.Description, ", "),
	)
}

// NormalizeHeader lower-cases a header, trims it and collapses runs of
// inner whitespace to one space, so "Item  Name" matches "item name".
func NormalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, NormalizeHeader(s))
	}
	return out
}

func containsAny(words []string) func(string) bool {
	return func(h string) bool {
		for _, w := range words {
			if w != "" && strings.Contains(h, w) {
				return true
			}
		}
		return false
	}
}

func equalsAny(words []string) func(string) bool {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return func(h string) bool {
		_, ok := set[h]
		return ok
	}
}

func quoteJoin(words []string, sep string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	return strings.Join(quoted, sep)
}
