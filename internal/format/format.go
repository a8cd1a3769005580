// Package format holds the string transforms used for display names, routing
// slugs and stored file names.
package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/gosimple/slug"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// DisplayName turns a camel-case token into words: "RealEstate" -> "Real Estate".
//
// A space goes before an upper-case letter when the previous rune is lower-case
// or a digit, or when it is the last capital of an acronym followed by a
// lower-case letter ("HVACRepair" -> "HVAC Repair"). Existing whitespace is kept
// as is, a leading capital gets no leading space and "" stays "".
func DisplayName(s string) string {
	runes := []rune(strings.TrimSpace(s))
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				b.WriteRune(' ')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CategorySlug derives a category URL: lower-cased, every run of characters
// outside [a-z0-9] collapsed to one hyphen, no leading or trailing hyphen.
// "Real Estate & Law" -> "real-estate-law". Uniqueness is not checked.
func CategorySlug(name string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// MemberSlug is the profile route segment "firstname-lastname", lower-cased.
func MemberSlug(firstname, lastname string) string {
	return strings.ToLower(firstname + "-" + lastname)
}

// LogoFilename builds "<name>_<unix millis>.<ext>" for an uploaded logo.
// ext is taken without its leading dot and lower-cased.
func LogoFilename(businessName, ext string, now time.Time) string {
	base := slug.Make(businessName)
	if base == "" {
		base = "business"
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return fmt.Sprintf("%s_%d.%s", base, now.UnixMilli(), ext)
}
