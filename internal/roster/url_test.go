package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMemberPageURLSubstitutesDiacritics(t *testing.T) {
	log := zap.NewNop()
	base := "http://www.vdHamer.com/fgWaalre"

	assert.Equal(t, "http://www.vdHamer.com/fgWaalre/Henriette_van_Ekert/",
		MemberPageURL(base, "Henriëtte van Ekert", log))
	assert.Equal(t, "http://www.vdHamer.com/fgWaalre/Peter_van_den_Hamer/",
		MemberPageURL(base, "Peter van den Hamer", log))
	assert.Equal(t, "http://www.vdHamer.com/fgWaalre/Francois_Hermans/",
		MemberPageURL(base, "François Hermans", log))
	assert.Equal(t, "http://www.vdHamer.com/fgWaalre/Jose_Daniels/",
		MemberPageURL(base, "José Daniëls", log))
}

func TestMemberPageURLTruncatesAtUnsupportedRune(t *testing.T) {
	// Ö has no substitution, so the segment stops right before it even
	// though the later ç would have one.
	got := MemberPageURL("http://www.vdHamer.com/fgWaalre", "Ekin Özbiçer", zap.NewNop())
	assert.Equal(t, "http://www.vdHamer.com/fgWaalre/Ekin_/", got)
}

func TestMemberPageURLFallsBackWhenNothingUsable(t *testing.T) {
	got := MemberPageURL("http://www.vdHamer.com/fgWaalre", "温", zap.NewNop())
	assert.Equal(t, "http://www.vdHamer.com/fgWaalre/Peter_van_den_Hamer/", got)
}

func TestMemberPageURLTrimsTrailingSlash(t *testing.T) {
	got := MemberPageURL("http://example.com/club/", "Jan Jansen", zap.NewNop())
	assert.Equal(t, "http://example.com/club/Jan_Jansen/", got)
}
