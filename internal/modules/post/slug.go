package post

import (
	"crypto/rand"
	"strings"
)

const slugFallbackLen = 12

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify derives a URL slug from an English title: lowercase, trim, strip
// non-alphanumerics, spaces to hyphens, repeated hyphens collapsed. Titles
// without a single alphanumeric rune yield "".
func Slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range lower {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		case r == ' ' || r == '-' || r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}

// randomSlug returns a random lowercase-alphanumeric string of length n,
// used when the title slugifies to nothing.
func randomSlug(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, v := range buf {
		buf[i] = slugAlphabet[int(v)%len(slugAlphabet)]
	}
	return string(buf)
}
