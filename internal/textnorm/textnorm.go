// Package textnorm strips diacritics from free-text labels before they are
// persisted.
package textnorm

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMark matches the Combining Diacritical Marks block.
var combiningMark = runes.Predicate(func(r rune) bool {
	return r >= '\u0300' && r <= '\u036f'
})

var cedilla = strings.NewReplacer("ç", "c", "Ç", "C")

// StripAccents decomposes s, drops combining marks and maps the cedilla to
// its base letter. "Negociação" becomes "Negociacao".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(combiningMark), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cedilla.Replace(out)
}
