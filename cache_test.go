package diagdbodx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/openvehiclediag/diagdb-to-odx/config"
	"github.com/openvehiclediag/diagdb-to-odx/diag"
	"github.com/openvehiclediag/diagdb-to-odx/exporter"
)

func testExporter() *exporter.Exporter {
	db := &diag.Database{
		ID:        "DLC.Vehicle",
		ShortName: "Vehicle",
		Layers: []diag.DiagLayer{{
			ID:        "BV.EngineECU",
			ShortName: "EngineECU",
			Services: []diag.DiagService{{
				ID:         "DS.ReadDTC",
				ShortName:  "Read_DTC",
				RequestRef: "RQ.ReadDTC",
			}},
		}},
	}
	return exporter.NewExporter(db, config.AppConfig{})
}

// TestExportCache_MemoizesDocument verifies a second request is served
// from the cache
func TestExportCache_MemoizesDocument(t *testing.T) {
	e := testExporter()
	ec := NewExportCache(e)

	first, err := ec.GetDocument("xml")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}

	// mutate the database: the cached response must not change
	e.DB.Layers[0].Services[0].ShortName = "Renamed"
	second, _ := ec.GetDocument("xml")
	if !bytes.Equal(first, second) {
		t.Error("second request should be served from the cache")
	}

	ec.Invalidate()
	third, _ := ec.GetDocument("xml")
	if bytes.Equal(first, third) {
		t.Error("invalidation should force a re-render")
	}
	if !strings.Contains(string(third), "Renamed") {
		t.Error("re-render should see the current database")
	}
}

// TestExportCache_Formats verifies xml and json are cached independently
func TestExportCache_Formats(t *testing.T) {
	ec := NewExportCache(testExporter())

	xmlBuf, _ := ec.GetDocument("xml")
	jsonBuf, _ := ec.GetDocument("json")

	if !strings.HasPrefix(string(xmlBuf), "<?xml") {
		t.Error("xml format should render an XML document")
	}
	if !strings.HasPrefix(string(jsonBuf), "{") {
		t.Error("json format should render a JSON document")
	}
}

// TestExportCache_GetLayer verifies layer lookup and the unknown-layer
// error
func TestExportCache_GetLayer(t *testing.T) {
	ec := NewExportCache(testExporter())

	buf, err := ec.GetLayer("EngineECU")
	if err != nil {
		t.Fatalf("GetLayer failed: %v", err)
	}
	if !strings.Contains(string(buf), `<BASE-VARIANT ID="BV.EngineECU">`) {
		t.Errorf("unexpected layer output: %s", buf)
	}

	if _, err := ec.GetLayer("BodyECU"); err == nil {
		t.Error("unknown layer should return an error")
	}
}
