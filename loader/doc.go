// Package loader constructs diag.Database values from YAML or JSON
// database description files.
//
// Loading is the upstream boundary that guarantees the writer's input
// contract: mandatory fields are validated with struct tags, elements
// authored without an id get one assigned, and every intra-document
// reference must resolve before a database is handed out. A database
// returned by this package renders without further checks.
package loader
