package writer

import "strings"

// hasText is the shared presence rule for optional string fields: a field
// is rendered only when it is non-empty after trimming whitespace.
func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// writeRefXML emits an empty reference element such as
// <REQUEST-REF ID-REF="..."/>.
func writeRefXML(b *strings.Builder, tag, idRef string) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(` ID-REF="`)
	b.WriteString(xmlEscape(idRef))
	b.WriteString(`"/>`)
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
