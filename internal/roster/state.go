// Package roster scrapes the semi-structured HTML member table of a club
// site. The page layout is not machine-validated; the parser is a
// best-effort line-oriented state machine keyed on marker substrings.
package roster

import "strings"

// State is one step of the cyclic parsing state machine. One full cycle
// through StatePersonName..StateBirthDate assembles one member record.
type State int

const (
	StateTableStart State = iota
	StateTableHeader
	StateRowStart
	StatePersonName
	StatePhone
	StateEmail
	StateExternalURL
	StateBirthDate
)

func (s State) String() string {
	switch s {
	case StateTableStart:
		return "tableStart"
	case StateTableHeader:
		return "tableHeader"
	case StateRowStart:
		return "rowStart"
	case StatePersonName:
		return "personName"
	case StatePhone:
		return "phoneNumber"
	case StateEmail:
		return "eMail"
	case StateExternalURL:
		return "externalURL"
	case StateBirthDate:
		return "birthDate"
	}
	return "unknown"
}

// Marker returns the substring a line must contain to be consumed by this
// state. The member table renders one cell per line, so the five cell states
// all key on the cell-open tag.
func (s State) Marker() string {
	switch s {
	case StateTableStart:
		return "<table"
	case StateTableHeader:
		return "<th"
	case StateRowStart:
		return "<tr"
	default:
		return "<td"
	}
}

// Next returns the successor in the fixed cycle. Completing a birth date
// loops back to the start of the next row.
func (s State) Next() State {
	if s == StateBirthDate {
		return StateRowStart
	}
	return s + 1
}

// Hit records that a line was consumed by a state.
type Hit struct {
	State State
	Line  string
}

// Transition is the total transition function over (state, line): a line
// containing the current state's marker is consumed and the cycle advances;
// any other line is skipped with the state unchanged. There is no
// backtracking.
func Transition(s State, line string) (State, *Hit) {
	if !strings.Contains(line, s.Marker()) {
		return s, nil
	}
	return s.Next(), &Hit{State: s, Line: line}
}
