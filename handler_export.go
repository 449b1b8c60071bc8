package diagdbodx

import (
	"encoding/json"
	"net/http"
)

func buildErrorPayload(call, message string) []byte {
	b, _ := json.Marshal(map[string]string{"call": call, "error": message})
	return b
}

func handleDocumentXML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml")
	if exportCache == nil {
		w.WriteHeader(503)
		_, _ = w.Write(buildErrorPayload("document", "no database loaded"))
		return
	}
	buf, err := exportCache.GetDocument("xml")
	if err != nil {
		w.WriteHeader(500)
		_, _ = w.Write(buildErrorPayload("document", err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

func handleDocumentJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if exportCache == nil {
		w.WriteHeader(503)
		_, _ = w.Write(buildErrorPayload("document", "no database loaded"))
		return
	}
	buf, err := exportCache.GetDocument("json")
	if err != nil {
		w.WriteHeader(500)
		_, _ = w.Write(buildErrorPayload("document", err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

func handleLayerXML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml")
	if exportCache == nil {
		w.WriteHeader(503)
		_, _ = w.Write(buildErrorPayload("layer", "no database loaded"))
		return
	}
	shortName := r.URL.Query().Get("shortName")
	if shortName == "" {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload("layer", "shortName query parameter required"))
		return
	}
	buf, err := exportCache.GetLayer(shortName)
	if err != nil {
		w.WriteHeader(404)
		_, _ = w.Write(buildErrorPayload("layer", err.Error()))
		return
	}
	_, _ = w.Write(buf)
}
