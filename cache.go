package diagdbodx

import (
	"bytes"
	"errors"
	"sync"

	"github.com/openvehiclediag/diagdb-to-odx/exporter"
)

// ExportCache memoizes rendered documents per exporter. Rendering is
// deterministic for a loaded database, so entries stay valid until the
// database is replaced.
type ExportCache struct {
	exporter      *exporter.Exporter
	mu            sync.Mutex
	responseCache map[string][]byte
}

func NewExportCache(e *exporter.Exporter) *ExportCache {
	return &ExportCache{exporter: e, responseCache: map[string][]byte{}}
}

func (ec *ExportCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// GetDocument returns the full document in the given format ("xml" or
// "json").
func (ec *ExportCache) GetDocument(format string) ([]byte, error) {
	key := ec.memoKey("document", format)
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if buf, ok := ec.responseCache[key]; ok {
		return buf, nil
	}
	var buf []byte
	if format == "json" {
		buf = ec.exporter.BuildDocumentJSON()
	} else {
		buf = ec.exporter.BuildDocument()
	}
	ec.responseCache[key] = buf
	return buf, nil
}

// GetLayer returns one BASE-VARIANT element by short name.
func (ec *ExportCache) GetLayer(shortName string) ([]byte, error) {
	key := ec.memoKey("layer", shortName)
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if buf, ok := ec.responseCache[key]; ok {
		return buf, nil
	}
	buf, ok := ec.exporter.BuildLayer(shortName)
	if !ok {
		return nil, errors.New("unknown layer: " + shortName)
	}
	ec.responseCache[key] = buf
	return buf, nil
}

// Invalidate drops all memoized responses.
func (ec *ExportCache) Invalidate() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.responseCache = map[string][]byte{}
}
