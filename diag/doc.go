// Package diag defines the in-memory model of a vehicle diagnostic database.
//
// The model is a pragmatic subset of the ODX 2.2 element hierarchy:
//
//   - Database: one DIAG-LAYER-CONTAINER with its base variants
//   - DiagLayer: a BASE-VARIANT holding services, jobs, requests,
//     responses, functional classes and additional audiences
//   - DiagService / SingleEcuJob: the DIAG-COMMS members
//   - Request / Response / Param: message layouts
//   - Audience / AdditionalAudience: execution-permission descriptors
//
// All types carry YAML and JSON struct tags so a database can be authored
// as a YAML/JSON description file and loaded by the loader package.
// Entities are treated as immutable once loaded; the writer package only
// reads them.
package diag
