// internal/slug/slug.go
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes characters and strips combining marks, so that
// "Associação" folds to "Associacao".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make derives a lowercase, hyphenated, ASCII-folded slug from name,
// truncated to maxLen. An empty or unfoldable name yields an empty slug.
func Make(name string, maxLen int) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	s := strings.Trim(b.String(), "-")
	if maxLen > 0 && len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	return s
}
