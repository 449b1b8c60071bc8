package diagdbodx

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Layers   int    `json:"layers"`
	Services int    `json:"services"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{Status: "ok"}
	if current != nil {
		resp.Database = current.DB.ShortName
		resp.Layers = len(current.DB.Layers)
		for _, layer := range current.DB.Layers {
			resp.Services += len(layer.Services)
		}
	}
	_ = json.NewEncoder(w).Encode(resp)
}
