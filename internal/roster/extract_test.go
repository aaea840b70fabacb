package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterPage = `<html>
<body>
<h1>Ledenlijst</h1>
<table class="members">
<tr>
<th>Naam</th>
<th>Telefoon</th>
<th>Email</th>
<th>Website</th>
<th>Geboortedatum</th>
</tr>
<tr>
<td>Peter van den Hamer (vice-voorzitter)</td>
<td>040-1234567</td>
<td><a href="mailto:peter@example.com">peter@example.com</a></td>
<td><a href="https://www.vdhamer.com">site</a></td>
<td>12/10/1957</td>
</tr>
<tr>
<td>Henri&euml;tte van Ekert</td>
<td></td>
<td>henriette@example.com</td>
<td></td>
<td>01/02/1950</td>
</tr>
</table>
</body>
</html>`

func TestParseAssemblesRecords(t *testing.T) {
	records := Parse(rosterPage)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Peter van den Hamer (vice-voorzitter)", first.DisplayName)
	assert.Equal(t, "Peter", first.Name.Given)
	assert.Equal(t, "van den", first.Name.Infix)
	assert.Equal(t, "Hamer", first.Name.Family)
	assert.Equal(t, "040-1234567", first.Phone)
	assert.Equal(t, "peter@example.com", first.Email)
	assert.Equal(t, "https://www.vdhamer.com", first.Website)
	require.True(t, first.HasBornAt)
	assert.Equal(t, time.Date(1957, 10, 12, 0, 0, 0, 0, time.UTC), first.BornAt)

	second := records[1]
	assert.Equal(t, "Henriëtte van Ekert", second.DisplayName, "entities are unescaped")
	assert.Equal(t, "", second.Phone, "empty cell stays empty")
	assert.Equal(t, "henriette@example.com", second.Email)
	assert.Equal(t, "", second.Website)
}

func TestParseIsDeterministic(t *testing.T) {
	first := Parse(rosterPage)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Parse(rosterPage))
	}
}

func TestParseIgnoresNoise(t *testing.T) {
	// Lines without the awaited marker are skipped without state change.
	page := "<div>intro</div>\n" + rosterPage + "\n<p>footer</p>"
	assert.Len(t, Parse(page), 2)
}

func TestParseIncompleteFinalRowDropped(t *testing.T) {
	cut := rosterPage[:len(rosterPage)-len("<td>01/02/1950</td>\n</tr>\n</table>\n</body>\n</html>")]
	records := Parse(cut)
	require.Len(t, records, 1, "a row without a birth date cell never completes")
	assert.Equal(t, "Peter", records[0].Name.Given)
}

func TestTransitionCycle(t *testing.T) {
	state := StateTableStart

	state, hit := Transition(state, "no markers here")
	assert.Nil(t, hit)
	assert.Equal(t, StateTableStart, state)

	state, hit = Transition(state, `<table class="members">`)
	require.NotNil(t, hit)
	assert.Equal(t, StateTableStart, hit.State)
	assert.Equal(t, StateTableHeader, state)

	state, _ = Transition(state, "<th>Naam</th>")
	assert.Equal(t, StateRowStart, state)
	state, _ = Transition(state, "<tr>")
	assert.Equal(t, StatePersonName, state)
	state, _ = Transition(state, "<td>Jan Jansen</td>")
	assert.Equal(t, StatePhone, state)
	state, _ = Transition(state, "<td></td>")
	assert.Equal(t, StateEmail, state)
	state, _ = Transition(state, "<td>jan@example.com</td>")
	assert.Equal(t, StateExternalURL, state)
	state, _ = Transition(state, "<td></td>")
	assert.Equal(t, StateBirthDate, state)
	state, _ = Transition(state, "<td>01/01/1970</td>")
	assert.Equal(t, StateRowStart, state, "birth date loops back to the next row")
}

func TestExtractPhonePlaceholders(t *testing.T) {
	assert.Equal(t, "", extractPhone("<td>[overleden]</td>"))
	assert.Equal(t, "", extractPhone("<td>-</td>"))
	assert.Equal(t, "06-12345678", extractPhone("<td>06-12345678</td>"))
}

func TestExtractBirthDateRejectsGarbage(t *testing.T) {
	_, ok := extractBirthDate("<td>n.v.t.</td>")
	assert.False(t, ok)
}
