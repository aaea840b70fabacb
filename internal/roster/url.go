package roster

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// fallbackMemberName substitutes when a member's name yields no usable URL
// segment at all. A known limitation, not a crash.
const fallbackMemberName = "Peter_van_den_Hamer"

var (
	asciiNameRE   = regexp.MustCompile(`^[A-Za-z_]+$`)
	asciiPrefixRE = regexp.MustCompile(`^[A-Za-z_]+`)

	// the small set of diacritics seen on the page so far; anything else
	// truncates the segment
	diacritics = strings.NewReplacer(
		" ", "_",
		"á", "a", // affects István_Nagy
		"ç", "c", // affects François_Hermans
		"ë", "e", // affects Henriëtte_van_Ekert
		"é", "e", // affects José_Daniëls
	)
)

// MemberPageURL derives the canonical per-member profile URL under the club
// site from a display name (role suffix already stripped). Only ASCII
// letters and underscores are allowed in the segment; a name that still
// carries other characters after substitution is truncated to its longest
// valid prefix, with a diagnostic naming the first unsupported character.
func MemberPageURL(baseURL, name string, log *zap.Logger) string {
	segment := diacritics.Replace(name)

	if !asciiNameRE.MatchString(segment) {
		prefix := asciiPrefixRE.FindString(segment)
		if prefix == "" {
			log.Error("no usable URL segment for member name, substituting fallback",
				zap.String("name", name))
			segment = fallbackMemberName
		} else {
			unsupported, _ := utf8.DecodeRuneInString(segment[len(prefix):])
			log.Warn("unsupported character in member name, truncating URL segment",
				zap.String("name", name),
				zap.String("unsupported", string(unsupported)),
				zap.String("segment", prefix))
			segment = prefix
		}
	}

	return strings.TrimRight(baseURL, "/") + "/" + segment + "/"
}
