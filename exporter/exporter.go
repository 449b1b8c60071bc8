package exporter

import (
	"encoding/json"
	"strings"

	"github.com/openvehiclediag/diagdb-to-odx/config"
	"github.com/openvehiclediag/diagdb-to-odx/diag"
	"github.com/openvehiclediag/diagdb-to-odx/writer"
)

// Exporter coordinates a loaded database and configuration to produce
// ODX documents
type Exporter struct {
	DB  *diag.Database
	Cfg config.AppConfig
}

// NewExporter creates a new exporter instance
func NewExporter(db *diag.Database, cfg config.AppConfig) *Exporter {
	return &Exporter{DB: db, Cfg: cfg}
}

func (e *Exporter) documentWriter() *writer.DocumentWriter {
	dw := writer.NewDocumentWriter()
	if e.Cfg.Writer.ModelVersion != "" {
		dw.ModelVersion = e.Cfg.Writer.ModelVersion
	}
	return dw
}

// BuildDocument renders the complete ODX document for the database.
func (e *Exporter) BuildDocument() []byte {
	return e.documentWriter().BuildXML(e.DB)
}

// BuildDocumentJSON renders the database as JSON.
func (e *Exporter) BuildDocumentJSON() []byte {
	return e.documentWriter().BuildJSON(e.DB)
}

// BuildLayer renders a single BASE-VARIANT selected by short name. The
// second return value reports whether the layer exists.
func (e *Exporter) BuildLayer(shortName string) ([]byte, bool) {
	for _, layer := range e.DB.Layers {
		if strings.EqualFold(layer.ShortName, shortName) {
			return e.documentWriter().BuildLayerXML(layer), true
		}
	}
	return nil, false
}

// FilterServices selects services across layers by layer short name,
// semantic and functional class reference. Empty filters match
// everything; matching is case-insensitive, substring for the layer.
func (e *Exporter) FilterServices(layerShort, semantic, functClass string) []diag.DiagService {
	layerShort = strings.ToLower(strings.TrimSpace(layerShort))
	semantic = strings.ToLower(strings.TrimSpace(semantic))
	functClass = strings.ToLower(strings.TrimSpace(functClass))

	selected := []diag.DiagService{}
	for _, layer := range e.DB.Layers {
		if layerShort != "" && !strings.Contains(strings.ToLower(layer.ShortName), layerShort) {
			continue
		}
		for _, svc := range layer.Services {
			if semantic != "" && strings.ToLower(svc.Semantic) != semantic {
				continue
			}
			if functClass != "" {
				hasClass := false
				for _, ref := range svc.FunctClassRefs {
					if strings.ToLower(ref) == functClass {
						hasClass = true
						break
					}
				}
				if !hasClass {
					continue
				}
			}
			selected = append(selected, svc)
		}
	}
	return selected
}

// GetState returns the current exporter state as JSON
func (e *Exporter) GetState() []byte {
	services, jobs := 0, 0
	for _, layer := range e.DB.Layers {
		services += len(layer.Services)
		jobs += len(layer.Jobs)
	}
	b, _ := json.Marshal(map[string]any{
		"database": e.DB.ShortName,
		"layers":   len(e.DB.Layers),
		"services": services,
		"jobs":     jobs,
	})
	return b
}
