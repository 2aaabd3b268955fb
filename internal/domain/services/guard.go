// Package services contains the domain logic of the question router.
package services

import (
	"regexp"
	"strings"

	"github.com/ersonp/datask-core/internal/domain/entities"
)

var (
	// reMutatingVerb matches any mutating keyword regardless of position.
	reMutatingVerb = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|create|alter|truncate|merge)\b`)
	// reFromList captures everything after FROM up to the next clause
	// keyword or parenthesis, so every entry of a comma-separated table
	// list is seen and a subquery's own FROM still gets its own match.
	// This is a lexical check, not a parse; it errs on the side of
	// rejecting.
	reFromList = regexp.MustCompile(`(?i)\bfrom\s+([^;]*?)(?:\b(?:where|group|order|having|limit|union|join|on)\b|\(|\)|$)`)
	// reJoinTable captures the single identifier joined in.
	reJoinTable = regexp.MustCompile(`(?i)\bjoin\s+([A-Za-z_\[][A-Za-z0-9_.\[\]]*)`)
)

// Guard validates untrusted statement text before execution. No statement
// reaches storage without passing Validate first.
type Guard struct {
	catalog entities.Catalog
}

// NewGuard creates a guard whose table allow-list is the catalog.
func NewGuard(catalog entities.Catalog) *Guard {
	return &Guard{catalog: catalog}
}

// Validate applies the safety rules in order and returns the statement
// text unchanged (modulo outer whitespace) on acceptance. Every rejection
// is a *entities.SafetyError carrying the reason.
func (g *Guard) Validate(stmt string) (string, error) {
	trimmed := strings.TrimSpace(stmt)
	if trimmed == "" {
		return "", &entities.SafetyError{Reason: "empty statement"}
	}
	if strings.Contains(trimmed, ";") {
		return "", &entities.SafetyError{Reason: "statement separators are not allowed"}
	}
	fields := strings.Fields(strings.ToLower(trimmed))
	if fields[0] != "select" {
		return "", &entities.SafetyError{Reason: "only SELECT statements are allowed"}
	}
	if verb := reMutatingVerb.FindString(trimmed); verb != "" {
		return "", &entities.SafetyError{Reason: "mutating keyword " + strings.ToUpper(verb) + " is not allowed"}
	}
	for _, ref := range tableRefs(trimmed) {
		if !g.catalog.Allows(ref) {
			return "", &entities.SafetyError{Reason: "table " + ref + " is not on the allow-list"}
		}
	}
	return trimmed, nil
}

// tableRefs collects every identifier in table position: each
// comma-separated entry of a FROM list and the target of every JOIN.
// Aliases after an entry and parenthesized subqueries are skipped; the
// subquery's own FROM is matched separately.
func tableRefs(stmt string) []string {
	var refs []string
	for _, m := range reFromList.FindAllStringSubmatch(stmt, -1) {
		for _, entry := range strings.Split(m[1], ",") {
			fields := strings.Fields(entry)
			if len(fields) == 0 || !isTableIdent(fields[0]) {
				continue
			}
			refs = append(refs, fields[0])
		}
	}
	for _, m := range reJoinTable.FindAllStringSubmatch(stmt, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

// isTableIdent reports whether the token can open a table identifier.
func isTableIdent(tok string) bool {
	c := tok[0]
	return c == '[' || c == '_' ||
		(c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
