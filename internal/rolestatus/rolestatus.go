// Package rolestatus holds the role and status vocabulary for club members.
// Two independent boolean mappings are the canonical representation; the
// portfolio record caches them as columns. Absent keys in a mapping mean
// "leave the stored value alone".
package rolestatus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role is a club function held by a member.
type Role string

const (
	RoleChairman     Role = "chairman"
	RoleViceChairman Role = "viceChairman"
	RoleTreasurer    Role = "treasurer"
	RoleSecretary    Role = "secretary"
	RoleAdmin        Role = "admin"
)

// roleOrder fixes the precedence used when building the description phrase.
var roleOrder = []Role{RoleChairman, RoleViceChairman, RoleTreasurer, RoleSecretary, RoleAdmin}

func (r Role) String() string {
	if r == RoleViceChairman {
		return "vice-chairman"
	}
	return string(r)
}

// Status describes the membership state of a member.
type Status string

const (
	StatusDeceased    Status = "deceased"
	StatusFormer      Status = "former"
	StatusHonorary    Status = "honorary"
	StatusProspective Status = "prospective"
	StatusCoach       Status = "coach"
	StatusCurrent     Status = "current"
)

func (s Status) String() string { return string(s) }

// RolesAndStatus is a partial update of a member's roles and status. A key
// that is present overwrites the corresponding flag; a missing key leaves it
// untouched.
type RolesAndStatus struct {
	Role   map[Role]bool
	Status map[Status]bool
}

// New returns an empty mapping pair, convenient for call sites that only
// fill one side.
func New() RolesAndStatus {
	return RolesAndStatus{Role: map[Role]bool{}, Status: map[Status]bool{}}
}

// WithRole returns a copy with one role flag set.
func (rs RolesAndStatus) WithRole(r Role, v bool) RolesAndStatus {
	out := rs.clone()
	out.Role[r] = v
	return out
}

// WithStatus returns a copy with one status flag set.
func (rs RolesAndStatus) WithStatus(s Status, v bool) RolesAndStatus {
	out := rs.clone()
	out.Status[s] = v
	return out
}

func (rs RolesAndStatus) clone() RolesAndStatus {
	out := New()
	for k, v := range rs.Role {
		out.Role[k] = v
	}
	for k, v := range rs.Status {
		out.Status[k] = v
	}
	return out
}

// Description builds the human-readable role/status phrase: status prefixes
// first (deceased, then former unless the member is honorary), then the
// active roles in fixed order, then exactly one trailing status qualifier
// chosen by priority prospective > honorary > coach > current. Suffixes are
// joined with the localized conjunction. The loop's literal spacing is kept
// on purpose; UI text depends on it.
func (rs RolesAndStatus) Description(conjunction string) string {
	var prefixes, suffixes []string

	if rs.Status[StatusDeceased] {
		prefixes = append(prefixes, StatusDeceased.String())
	}
	if rs.Status[StatusFormer] && !rs.Status[StatusHonorary] {
		prefixes = append(prefixes, StatusFormer.String())
	}

	for _, r := range roleOrder {
		if rs.Role[r] {
			suffixes = append(suffixes, r.String())
		}
	}

	switch {
	case rs.Status[StatusProspective]:
		suffixes = append(suffixes, StatusProspective.String())
	case rs.Status[StatusHonorary]:
		suffixes = append(suffixes, StatusHonorary.String())
	case rs.Status[StatusCoach]:
		suffixes = append(suffixes, StatusCoach.String())
	default:
		suffixes = append(suffixes, StatusCurrent.String())
	}

	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p + " ")
	}
	for i, s := range suffixes {
		b.WriteString(s + " ")
		if i < len(suffixes)-1 {
			b.WriteString(conjunction + " ")
		}
	}

	return capitalize(strings.TrimSpace(b.String()))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
