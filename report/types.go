package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/boltgroup/group"
)

// Meta is the document header. Empty fields are skipped; an empty Date is
// filled with today's date.
type Meta struct {
	Title   string
	Project string
	Author  string
	Date    string
	Notes   string
}

// Case pairs a display name with one distributed load case.
type Case struct {
	Name string
	Set  group.LoadSet
}

// title falls back to a generic heading when unset.
func (m Meta) title() string {
	if m.Title == "" {
		return "Fastener Group Analysis"
	}
	return m.Title
}

// date falls back to today.
func (m Meta) date() string {
	if m.Date == "" {
		return time.Now().Format("2006-01-02")
	}
	return m.Date
}

// sheetSanitizer folds the characters Excel forbids in sheet names.
var sheetSanitizer = strings.NewReplacer(
	"\\", "-", "/", "-", "?", "-", "*", "-", ":", "-", "[", "(", "]", ")",
)

// caseSheet derives a unique, valid sheet name for case i. The 1-based
// index prefix keeps names unique even after clipping to Excel's 31-rune
// limit.
func caseSheet(i int, name string) string {
	s := strings.TrimSpace(sheetSanitizer.Replace(name))
	if s == "" {
		s = fmt.Sprintf("Case %d", i+1)
	} else {
		s = fmt.Sprintf("%d %s", i+1, s)
	}
	if r := []rune(s); len(r) > 31 {
		s = string(r[:31])
	}
	return s
}
