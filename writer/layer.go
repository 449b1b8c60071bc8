package writer

import (
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

func writeBaseVariantXML(b *strings.Builder, layer diag.DiagLayer, audiences AudienceRenderer) {
	b.WriteString(`<BASE-VARIANT ID="`)
	b.WriteString(xmlEscape(layer.ID))
	b.WriteString(`">`)
	b.WriteString("<SHORT-NAME>")
	b.WriteString(layer.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(layer.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(layer.LongName))
		b.WriteString("</LONG-NAME>")
	}
	if hasText(layer.Description) {
		b.WriteString("<DESC>")
		b.WriteString(layer.Description)
		b.WriteString("</DESC>")
	}
	// FUNCT-CLASSS: the schema's plural of FUNCT-CLASS
	if len(layer.FunctClasses) > 0 {
		b.WriteString("<FUNCT-CLASSS>")
		for _, fc := range layer.FunctClasses {
			writeFunctClassXML(b, fc)
		}
		b.WriteString("</FUNCT-CLASSS>")
	}
	if len(layer.Services) > 0 || len(layer.Jobs) > 0 {
		b.WriteString("<DIAG-COMMS>")
		for _, svc := range layer.Services {
			writeDiagServiceXML(b, svc, audiences)
		}
		for _, job := range layer.Jobs {
			writeSingleEcuJobXML(b, job, audiences)
		}
		b.WriteString("</DIAG-COMMS>")
	}
	if len(layer.Requests) > 0 {
		b.WriteString("<REQUESTS>")
		for _, req := range layer.Requests {
			writeRequestXML(b, req)
		}
		b.WriteString("</REQUESTS>")
	}
	if len(layer.PosResponses) > 0 {
		b.WriteString("<POS-RESPONSES>")
		for _, res := range layer.PosResponses {
			writeResponseXML(b, "POS-RESPONSE", res)
		}
		b.WriteString("</POS-RESPONSES>")
	}
	if len(layer.NegResponses) > 0 {
		b.WriteString("<NEG-RESPONSES>")
		for _, res := range layer.NegResponses {
			writeResponseXML(b, "NEG-RESPONSE", res)
		}
		b.WriteString("</NEG-RESPONSES>")
	}
	if len(layer.AdditionalAudiences) > 0 {
		b.WriteString("<ADDITIONAL-AUDIENCES>")
		for _, aa := range layer.AdditionalAudiences {
			writeAdditionalAudienceXML(b, aa)
		}
		b.WriteString("</ADDITIONAL-AUDIENCES>")
	}
	b.WriteString("</BASE-VARIANT>")
}

func writeFunctClassXML(b *strings.Builder, fc diag.FunctClass) {
	b.WriteString(`<FUNCT-CLASS ID="`)
	b.WriteString(xmlEscape(fc.ID))
	b.WriteString(`">`)
	b.WriteString("<SHORT-NAME>")
	b.WriteString(fc.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(fc.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(fc.LongName))
		b.WriteString("</LONG-NAME>")
	}
	if hasText(fc.Description) {
		b.WriteString("<DESC>")
		b.WriteString(fc.Description)
		b.WriteString("</DESC>")
	}
	b.WriteString("</FUNCT-CLASS>")
}

func writeAdditionalAudienceXML(b *strings.Builder, aa diag.AdditionalAudience) {
	b.WriteString(`<ADDITIONAL-AUDIENCE ID="`)
	b.WriteString(xmlEscape(aa.ID))
	b.WriteString(`">`)
	b.WriteString("<SHORT-NAME>")
	b.WriteString(aa.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(aa.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(aa.LongName))
		b.WriteString("</LONG-NAME>")
	}
	b.WriteString("</ADDITIONAL-AUDIENCE>")
}
