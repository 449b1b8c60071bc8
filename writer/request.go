package writer

import (
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

func writeRequestXML(b *strings.Builder, req diag.Request) {
	b.WriteString(`<REQUEST ID="`)
	b.WriteString(xmlEscape(req.ID))
	b.WriteString(`">`)
	b.WriteString("<SHORT-NAME>")
	b.WriteString(req.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(req.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(req.LongName))
		b.WriteString("</LONG-NAME>")
	}
	writeParamsXML(b, req.Params)
	b.WriteString("</REQUEST>")
}
