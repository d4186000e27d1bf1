// Package normalize canonicalizes user-supplied identity fields before they
// are stored or compared.
package normalize

import "strings"

// Email trims surrounding whitespace from an email address. Case is kept:
// emails match exactly. A blank input yields "", which callers treat as
// "no email".
func Email(e string) string {
	return strings.TrimSpace(e)
}

// Name trims surrounding whitespace from a display name. Case is kept:
// names match exactly.
func Name(n string) string {
	return strings.TrimSpace(n)
}
