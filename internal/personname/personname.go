// Package personname models the natural key used for photographers: a
// given/infix/family name triple. Matching is exact and case-sensitive; the
// infix ("van", "van den", ...) is stored but is not part of the identity.
package personname

import "strings"

// Name is a structured human name.
type Name struct {
	Given  string
	Infix  string
	Family string
}

// infix particles that occur between given and family names in Dutch names.
var particles = map[string]bool{
	"van": true, "de": true, "den": true, "der": true,
	"ter": true, "ten": true, "te": true, "op": true,
	"in": true, "aan": true, "bij": true, "het": true,
	"'t": true, "v.d.": true, "vd": true,
}

// Parse splits a display name into given/infix/family parts. A trailing
// parenthesized role suffix such as "Miek Kerkhoven (voorzitter)" is
// discarded first.
func Parse(display string) Name {
	full := StripRole(display)
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return Name{}
	}
	if len(tokens) == 1 {
		return Name{Given: tokens[0]}
	}

	given := tokens[0]
	rest := tokens[1:]

	var infix []string
	for len(rest) > 1 && particles[strings.ToLower(rest[0])] {
		infix = append(infix, rest[0])
		rest = rest[1:]
	}

	return Name{
		Given:  given,
		Infix:  strings.Join(infix, " "),
		Family: strings.Join(rest, " "),
	}
}

// StripRole removes a trailing parenthesized role annotation from a display
// name, e.g. "Miek Kerkhoven (voorzitter)" -> "Miek Kerkhoven".
func StripRole(display string) string {
	if i := strings.Index(display, "("); i >= 0 {
		display = display[:i]
	}
	return strings.TrimSpace(display)
}

// Full returns the display form "Given Infix Family" with empty parts
// skipped.
func (n Name) Full() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.Given, n.Infix, n.Family} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Empty reports whether the name has no given and no family part.
func (n Name) Empty() bool { return n.Given == "" && n.Family == "" }
