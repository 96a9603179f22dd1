package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/microstock-labs/stockmeta/internal/export"
	"github.com/microstock-labs/stockmeta/internal/models"
)

// HandleExport renders a results array as one platform's CSV and
// serves it as a download.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/export/")
	platform, err := export.ByName(name)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	}

	var request struct {
		Results []models.ExportableResult `json:"results"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.Results) == 0 {
		h.writeError(w, "results is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+platform.Filename(time.Now())+`"`)
	if _, err := w.Write([]byte(platform.Format(request.Results))); err != nil {
		h.writeError(w, "Failed to write CSV: "+err.Error(), http.StatusInternalServerError)
	}
}

// HandlePlatforms lists the supported export targets and their limits.
func (h *Handler) HandlePlatforms(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	type platformInfo struct {
		Name                 string `json:"name"`
		DisplayName          string `json:"display_name"`
		TitleMaxLength       int    `json:"title_max_length"`
		DescriptionMaxLength int    `json:"description_max_length"`
		KeywordMax           int    `json:"keyword_max"`
	}

	list := make([]platformInfo, 0, len(export.Platforms()))
	for _, p := range export.Platforms() {
		list = append(list, platformInfo{
			Name:                 p.Name,
			DisplayName:          p.DisplayName,
			TitleMaxLength:       p.TitleMaxLength,
			DescriptionMaxLength: p.DescriptionMaxLength,
			KeywordMax:           p.KeywordMax,
		})
	}
	h.writeJSON(w, list)
}
