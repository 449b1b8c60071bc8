package writer

import (
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

// AudienceRenderer produces the AUDIENCE fragment spliced into service
// and job elements. The element writers treat the returned text as
// opaque and never inspect it.
type AudienceRenderer interface {
	RenderAudience(a *diag.Audience) string
}

type audienceWriter struct{}

// NewAudienceRenderer returns the default ODX AUDIENCE writer.
func NewAudienceRenderer() AudienceRenderer { return audienceWriter{} }

func (audienceWriter) RenderAudience(a *diag.Audience) string {
	var b strings.Builder
	b.WriteString("<AUDIENCE")
	// tri-state flags: the schema defaults them to true, so the
	// attribute is only written when the author stated a value
	writeBoolAttr(&b, "IS-SUPPLIER", a.IsSupplier)
	writeBoolAttr(&b, "IS-DEVELOPMENT", a.IsDevelopment)
	writeBoolAttr(&b, "IS-MANUFACTURING", a.IsManufacturing)
	writeBoolAttr(&b, "IS-AFTERSALES", a.IsAftersales)
	writeBoolAttr(&b, "IS-AFTERMARKET", a.IsAftermarket)
	if len(a.EnabledAudienceRefs) == 0 && len(a.DisabledAudienceRefs) == 0 {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteString(">")
	if len(a.EnabledAudienceRefs) > 0 {
		b.WriteString("<ENABLED-AUDIENCE-REFS>")
		for _, ref := range a.EnabledAudienceRefs {
			writeRefXML(&b, "ENABLED-AUDIENCE-REF", ref)
		}
		b.WriteString("</ENABLED-AUDIENCE-REFS>")
	}
	if len(a.DisabledAudienceRefs) > 0 {
		b.WriteString("<DISABLED-AUDIENCE-REFS>")
		for _, ref := range a.DisabledAudienceRefs {
			writeRefXML(&b, "DISABLED-AUDIENCE-REF", ref)
		}
		b.WriteString("</DISABLED-AUDIENCE-REFS>")
	}
	b.WriteString("</AUDIENCE>")
	return b.String()
}

func writeBoolAttr(b *strings.Builder, name string, v *bool) {
	if v == nil {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	if *v {
		b.WriteString(`="true"`)
	} else {
		b.WriteString(`="false"`)
	}
}
