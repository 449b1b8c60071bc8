package diagdbodx

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	origCache, origCurrent := exportCache, current
	t.Cleanup(func() {
		exportCache, current = origCache, origCurrent
	})
}

// TestHandleDocumentXML verifies the XML endpoint serves a complete
// document
func TestHandleDocumentXML(t *testing.T) {
	resetGlobals(t)
	UseExporter(testExporter())

	req := httptest.NewRequest("GET", "/api/odx/document.xml", nil)
	rec := httptest.NewRecorder()
	handleDocumentXML(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml" {
		t.Errorf("unexpected content type: %s", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<ODX ") || !strings.Contains(body, "<DIAG-SERVICE ") {
		t.Errorf("unexpected body: %s", body)
	}
}

// TestHandleDocumentXML_NoDatabase verifies the endpoint reports 503
// before a database is installed
func TestHandleDocumentXML_NoDatabase(t *testing.T) {
	resetGlobals(t)
	exportCache, current = nil, nil

	rec := httptest.NewRecorder()
	handleDocumentXML(rec, httptest.NewRequest("GET", "/api/odx/document.xml", nil))
	if rec.Code != 503 {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

// TestHandleLayerXML verifies parameter validation and the not-found
// case
func TestHandleLayerXML(t *testing.T) {
	resetGlobals(t)
	UseExporter(testExporter())

	rec := httptest.NewRecorder()
	handleLayerXML(rec, httptest.NewRequest("GET", "/api/odx/layer.xml", nil))
	if rec.Code != 400 {
		t.Errorf("missing shortName should be 400, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleLayerXML(rec, httptest.NewRequest("GET", "/api/odx/layer.xml?shortName=BodyECU", nil))
	if rec.Code != 404 {
		t.Errorf("unknown layer should be 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleLayerXML(rec, httptest.NewRequest("GET", "/api/odx/layer.xml?shortName=EngineECU", nil))
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<BASE-VARIANT ") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

// TestHandleHealth verifies the health payload reflects the loaded
// database
func TestHandleHealth(t *testing.T) {
	resetGlobals(t)
	UseExporter(testExporter())

	rec := httptest.NewRecorder()
	handleHealth(rec, httptest.NewRequest("GET", "/api/health", nil))

	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("health payload should be JSON: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("unexpected status: %s", resp.Status)
	}
	if resp.Database != "Vehicle" || resp.Layers != 1 || resp.Services != 1 {
		t.Errorf("unexpected counts: %+v", resp)
	}
}
