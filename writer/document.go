package writer

import (
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

// DefaultModelVersion is the ODX schema version stamped on documents
// unless the configuration overrides it.
const DefaultModelVersion = "2.2.0"

// DocumentWriter assembles complete ODX documents from a database. The
// zero value is not usable; construct with NewDocumentWriter.
type DocumentWriter struct {
	ModelVersion string
	Audiences    AudienceRenderer
}

// NewDocumentWriter creates a document writer with the default model
// version and AUDIENCE renderer.
func NewDocumentWriter() *DocumentWriter {
	return &DocumentWriter{
		ModelVersion: DefaultModelVersion,
		Audiences:    NewAudienceRenderer(),
	}
}

// BuildXML serializes the full database to an ODX document.
func (dw *DocumentWriter) BuildXML(db *diag.Database) []byte {
	version := dw.ModelVersion
	if !hasText(version) {
		version = DefaultModelVersion
	}
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<ODX xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" MODEL-VERSION="`)
	b.WriteString(xmlEscape(version))
	b.WriteString(`">`)
	b.WriteString(`<DIAG-LAYER-CONTAINER ID="`)
	b.WriteString(xmlEscape(db.ID))
	b.WriteString(`">`)
	b.WriteString("<SHORT-NAME>")
	b.WriteString(db.ShortName)
	b.WriteString("</SHORT-NAME>")
	if hasText(db.LongName) {
		b.WriteString("<LONG-NAME>")
		b.WriteString(xmlEscape(db.LongName))
		b.WriteString("</LONG-NAME>")
	}
	if len(db.Layers) > 0 {
		b.WriteString("<BASE-VARIANTS>")
		for _, layer := range db.Layers {
			writeBaseVariantXML(&b, layer, dw.Audiences)
		}
		b.WriteString("</BASE-VARIANTS>")
	}
	b.WriteString("</DIAG-LAYER-CONTAINER>")
	b.WriteString("</ODX>")
	return []byte(b.String())
}

// BuildLayerXML serializes one BASE-VARIANT element on its own, without
// the document envelope.
func (dw *DocumentWriter) BuildLayerXML(layer diag.DiagLayer) []byte {
	var b strings.Builder
	writeBaseVariantXML(&b, layer, dw.Audiences)
	return []byte(b.String())
}
