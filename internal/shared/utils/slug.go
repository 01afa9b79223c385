package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// GenerateSlug builds a URL-friendly slug from a title:
// diacritics stripped, lowercased, non-alphanumerics collapsed to
// single hyphens. "Nguyễn Nhật Ánh" -> "nguyen-nhat-anh".
func GenerateSlug(input string) string {
	ascii := removeDiacritics(input)
	lower := strings.ToLower(ascii)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")
	normalized := multiHyphen.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// removeDiacritics decomposes to NFD and drops combining marks.
// The Vietnamese đ/Đ does not decompose, so it is mapped by hand.
func removeDiacritics(input string) string {
	replaced := strings.NewReplacer("đ", "d", "Đ", "D").Replace(input)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, replaced)
	if err != nil {
		return replaced
	}
	return result
}
