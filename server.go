package diagdbodx

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openvehiclediag/diagdb-to-odx/config"
	"github.com/openvehiclediag/diagdb-to-odx/exporter"
)

var (
	server      *http.Server
	exportCache *ExportCache
	current     *exporter.Exporter
)

// UseExporter installs the exporter backing the HTTP endpoints and
// resets the response cache.
func UseExporter(e *exporter.Exporter) {
	current = e
	exportCache = NewExportCache(e)
}

func StartServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/odx/document.xml", handleDocumentXML)
	mux.HandleFunc("/api/odx/document.json", handleDocumentJSON)
	mux.HandleFunc("/api/odx/layer.xml", handleLayerXML)

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
