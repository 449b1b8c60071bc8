package writer

import (
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

// writeResponseXML emits a POS-RESPONSE or NEG-RESPONSE element; the tag
// follows from the layer list the response came out of.
func writeResponseXML(b *strings.Builder, tag string, res diag.Response) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(` ID="`)
	b.WriteString(xmlEscape(res.ID))
	b.WriteString(`">`)
	b.WriteString("<SHORT-NAME>")
	b.WriteString(res.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(res.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(res.LongName))
		b.WriteString("</LONG-NAME>")
	}
	writeParamsXML(b, res.Params)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}
