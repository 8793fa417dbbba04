// ABOUTME: Filter criteria for the células view and its normalization helpers
// ABOUTME: Criteria are ephemeral UI state, reset wholesale by "clear filters"

package filter

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Criteria is the set of simultaneous filters for the células view.
// Zero values mean "no restriction" for each clause.
type Criteria struct {
	Dias       []string // day names, matched case-insensitively
	Genero     string   // matched case-insensitively
	HoraDesde  string   // "HH:MM" inclusive lower bound
	HoraHasta  string   // "HH:MM" inclusive upper bound
	LiderID    int64    // 0 means any líder
	SearchText string   // matched against nombre and dirección
}

// Reset clears every clause, the "clear filters" action.
func (c *Criteria) Reset() {
	*c = Criteria{}
}

// Equal reports whether two criteria values are identical.
func (c Criteria) Equal(other Criteria) bool {
	return slices.Equal(c.Dias, other.Dias) &&
		c.Genero == other.Genero &&
		c.HoraDesde == other.HoraDesde &&
		c.HoraHasta == other.HoraHasta &&
		c.LiderID == other.LiderID &&
		c.SearchText == other.SearchText
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases a string and strips diacritics so substring
// comparison is accent- and case-insensitive. If the transform fails on
// malformed input the lowercased original is used instead.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}
