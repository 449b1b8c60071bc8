// Package writer serializes a diag.Database to ODX 2.2 XML.
//
// This package is organized into:
// - document.go: ODX root and DIAG-LAYER-CONTAINER assembly
// - layer.go: BASE-VARIANT and its wrapper lists
// - service.go: DIAG-SERVICE elements
// - job.go: SINGLE-ECU-JOB elements
// - request.go / response.go / param.go: message layouts
// - audience.go: AUDIENCE fragments behind the AudienceRenderer interface
// - json.go: JSON serialization (debug format)
//
// All serialization is done manually for precise control over element
// order and per-field escaping, both of which are mandated by the ODX
// schema and checked by downstream validating tooling.
package writer
