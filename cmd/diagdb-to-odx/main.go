package main

import (
	"flag"
	"fmt"

	lib "github.com/openvehiclediag/diagdb-to-odx"
	"github.com/openvehiclediag/diagdb-to-odx/config"
	"github.com/openvehiclediag/diagdb-to-odx/exporter"
	"github.com/openvehiclediag/diagdb-to-odx/loader"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	format := flag.String("format", "xml", "xml|json")
	dbName := flag.String("db", "", "database name from config.databases[]")
	input := flag.String("input", "", "database description path (overrides config)")
	layerName := flag.String("layer", "", "render a single BASE-VARIANT by short name")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}

	dbCfg := config.SelectDatabase(*dbName)
	path := dbCfg.Path
	if *input != "" {
		path = *input
	}
	db, err := loader.LoadDatabase(path)
	if err != nil {
		panic(err)
	}
	exp := exporter.NewExporter(db, config.Config)

	switch *mode {
	case "oneshot":
		var buf []byte
		if *layerName != "" {
			out, ok := exp.BuildLayer(*layerName)
			if !ok {
				panic("unknown layer: " + *layerName)
			}
			buf = out
		} else if *format == "json" {
			buf = exp.BuildDocumentJSON()
		} else {
			buf = exp.BuildDocument()
		}
		fmt.Println(string(buf))
	case "serve":
		lib.UseExporter(exp)
		lib.StartServer()
		lib.HandleGracefulShutdown()
	default:
		panic("unknown mode")
	}
}
