package writer

import (
	"encoding/json"

	"github.com/openvehiclediag/diagdb-to-odx/diag"
)

// BuildJSON serializes the database to JSON. This is a debug/inspection
// format; ODX interchange is always the XML form.
func (dw *DocumentWriter) BuildJSON(db *diag.Database) []byte {
	b, _ := json.Marshal(db)
	return b
}
