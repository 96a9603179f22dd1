package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/microstock-labs/stockmeta/internal/models"
)

// HandleOptimize runs the SEO pipeline over one image's metadata.
func (h *Handler) HandleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Metadata     models.MetadataResult `json:"metadata"`
		ImageContent []string              `json:"image_content,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.Metadata.Keywords) == 0 {
		h.writeError(w, "metadata.keywords is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.optimizer.Optimize(request.Metadata, request.ImageContent))
}

// HandleAnalysis buckets a result's keywords and scores the overall
// listing without rewriting anything.
func (h *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Metadata models.MetadataResult `json:"metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.Metadata.Keywords) == 0 {
		h.writeError(w, "metadata.keywords is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, h.optimizer.Analyze(request.Metadata))
}
