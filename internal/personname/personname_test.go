package personname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		display string
		want    Name
	}{
		{"Peter van den Hamer", Name{Given: "Peter", Infix: "van den", Family: "Hamer"}},
		{"Henriëtte van Ekert", Name{Given: "Henriëtte", Infix: "van", Family: "Ekert"}},
		{"Miek Kerkhoven", Name{Given: "Miek", Family: "Kerkhoven"}},
		{"Miek Kerkhoven (voorzitter)", Name{Given: "Miek", Family: "Kerkhoven"}},
		{"Jan de Wit", Name{Given: "Jan", Infix: "de", Family: "Wit"}},
		{"Madonna", Name{Given: "Madonna"}},
		{"", Name{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.display), "display %q", tt.display)
	}
}

func TestParseKeepsParticleAsFamilyWhenLast(t *testing.T) {
	// a particle with nothing after it must fall through to the family part
	got := Parse("Kees van")
	assert.Equal(t, Name{Given: "Kees", Family: "van"}, got)
}

func TestFull(t *testing.T) {
	assert.Equal(t, "Peter van den Hamer",
		Name{Given: "Peter", Infix: "van den", Family: "Hamer"}.Full())
	assert.Equal(t, "Miek Kerkhoven", Name{Given: "Miek", Family: "Kerkhoven"}.Full())
}
