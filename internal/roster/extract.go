package roster

import (
	"bufio"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/smallbiznis/photohub/internal/personname"
)

// Record is one structured member record assembled from a table row.
type Record struct {
	// DisplayName is the cell text as shown on the page, possibly with a
	// parenthesized role suffix. The auxiliary name-list lookups match on
	// this exact form.
	DisplayName string
	Name        personname.Name

	// Phone is empty when the cell was empty; the loaders treat a missing
	// phone number as a deceased-member heuristic.
	Phone   string
	Email   string
	Website string

	BornAt    time.Time
	HasBornAt bool
}

var (
	tagRE  = regexp.MustCompile(`<[^>]*>`)
	hrefRE = regexp.MustCompile(`href="([^"]+)"`)
)

// Parse runs content through the state cycle and returns the member records
// in document order. The result depends only on the input text.
func Parse(content string) []Record {
	state := StateTableStart
	var rec Record
	var records []Record

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		next, hit := Transition(state, line)
		state = next
		if hit == nil {
			continue
		}

		switch hit.State {
		case StatePersonName:
			rec.DisplayName = stripTags(hit.Line)
			rec.Name = personname.Parse(rec.DisplayName)
		case StatePhone:
			rec.Phone = extractPhone(hit.Line)
		case StateEmail:
			rec.Email = extractEmail(hit.Line)
		case StateExternalURL:
			rec.Website = extractExternalURL(hit.Line)
		case StateBirthDate:
			rec.BornAt, rec.HasBornAt = extractBirthDate(hit.Line)
			records = append(records, rec)
			rec = Record{}
		}
	}
	return records
}

func stripTags(line string) string {
	return strings.TrimSpace(html.UnescapeString(tagRE.ReplaceAllString(line, "")))
}

// extractPhone returns the cleaned phone number, or "" for an empty cell or
// the site's placeholder for members without one.
func extractPhone(line string) string {
	phone := stripTags(line)
	if phone == "[overleden]" || phone == "-" {
		return ""
	}
	return phone
}

func extractEmail(line string) string {
	if m := hrefRE.FindStringSubmatch(line); m != nil {
		return strings.TrimPrefix(m[1], "mailto:")
	}
	return stripTags(line)
}

func extractExternalURL(line string) string {
	if m := hrefRE.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// extractBirthDate parses the dd/MM/yyyy cell format used by the page.
func extractBirthDate(line string) (time.Time, bool) {
	t, err := time.Parse("02/01/2006", stripTags(line))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
