package writer

import (
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

// RenderDiagService serializes one DIAG-SERVICE element. The audience
// fragment is produced by the given AudienceRenderer and spliced in
// verbatim. The input is read only; the SEMANTIC default below is never
// written back to it.
func RenderDiagService(svc diag.DiagService, audiences AudienceRenderer) string {
	var b strings.Builder
	writeDiagServiceXML(&b, svc, audiences)
	return b.String()
}

func writeDiagServiceXML(b *strings.Builder, svc diag.DiagService, audiences AudienceRenderer) {
	semantic := "UNKNOWN"
	if hasText(svc.Semantic) {
		semantic = svc.Semantic
	}
	b.WriteString(`<DIAG-SERVICE ID="`)
	b.WriteString(xmlEscape(svc.ID))
	b.WriteString(`" SEMANTIC="`)
	b.WriteString(xmlEscape(semantic))
	b.WriteString(`">`)
	// SHORT-NAME is pre-validated identifier text, written through as is
	b.WriteString("<SHORT-NAME>")
	b.WriteString(svc.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(svc.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(svc.LongName))
		b.WriteString("</LONG-NAME>")
	}
	// DESC carries upstream-sanitized markup, not escaped
	if hasText(svc.Description) {
		b.WriteString("<DESC>")
		b.WriteString(svc.Description)
		b.WriteString("</DESC>")
	}
	if len(svc.FunctClassRefs) > 0 {
		b.WriteString("<FUNCT-CLASS-REFS>")
		for _, ref := range svc.FunctClassRefs {
			writeRefXML(b, "FUNCT-CLASS-REF", ref)
		}
		b.WriteString("</FUNCT-CLASS-REFS>")
	}
	if svc.Audience != nil {
		b.WriteString(audiences.RenderAudience(svc.Audience))
	}
	writeRefXML(b, "REQUEST-REF", svc.RequestRef)
	if len(svc.PosResponseRefs) > 0 {
		b.WriteString("<POS-RESPONSE-REFS>")
		for _, ref := range svc.PosResponseRefs {
			writeRefXML(b, "POS-RESPONSE-REF", ref)
		}
		b.WriteString("</POS-RESPONSE-REFS>")
	}
	if len(svc.NegResponseRefs) > 0 {
		b.WriteString("<NEG-RESPONSE-REFS>")
		for _, ref := range svc.NegResponseRefs {
			writeRefXML(b, "NEG-RESPONSE-REF", ref)
		}
		b.WriteString("</NEG-RESPONSE-REFS>")
	}
	b.WriteString("</DIAG-SERVICE>")
}
