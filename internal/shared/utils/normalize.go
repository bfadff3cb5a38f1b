package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var titleCaser = cases.Title(language.Italian)

// NormalizeContactName canonicalizes a customer-supplied name: NFC
// normalization, whitespace collapsing and title casing. Accented Italian
// names compare equal regardless of the composition form the browser sent.
func NormalizeContactName(name string) string {
	normalized := norm.NFC.String(strings.TrimSpace(name))
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return ""
	}
	return titleCaser.String(strings.Join(fields, " "))
}

// NormalizeDiscountCode canonicalizes a discount code for lookup: NFC
// normalization, trimming and upper casing.
func NormalizeDiscountCode(code string) string {
	return strings.ToUpper(norm.NFC.String(strings.TrimSpace(code)))
}
