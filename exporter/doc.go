// Package exporter is the main entry point for diagnostic database to ODX
// conversion.
//
// An Exporter pairs a loaded diag.Database with the application
// configuration and produces rendered documents through the writer
// package. Exporter instances are cheap; rendering is a pure read of the
// database, so one database can back any number of concurrent exporters.
package exporter
