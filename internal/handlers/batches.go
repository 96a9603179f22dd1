package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/microstock-labs/stockmeta/internal/images"
	"github.com/microstock-labs/stockmeta/internal/metadata"
	"github.com/microstock-labs/stockmeta/internal/models"
)

const maxUploadBytes = 10 * 1024 * 1024

func (h *Handler) HandleBatches(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		batches := h.batchStore.GetAll()
		batchList := make([]*models.BatchSession, 0, len(batches))
		for _, batch := range batches {
			batchList = append(batchList, batch)
		}
		h.writeJSON(w, batchList)
	case "POST":
		if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			h.handleURLBatch(w, r)
			return
		}
		h.handleFileBatch(w, r)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleFileBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.writeError(w, "Failed to parse upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		files = r.MultipartForm.File["file"]
	}
	if len(files) == 0 {
		h.writeError(w, "No files in upload", http.StatusBadRequest)
		return
	}

	batch := &models.BatchSession{
		ID:        uuid.NewString(),
		Images:    make([]models.BatchImage, 0, len(files)),
		CreatedAt: time.Now(),
	}

	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		file.Close()
		if err != nil {
			h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if len(data) >= maxUploadBytes {
			h.writeError(w, "File too large (max 10MB): "+header.Filename, http.StatusBadRequest)
			return
		}
		if !filetype.IsImage(data) {
			h.writeError(w, "Not an image: "+header.Filename, http.StatusBadRequest)
			return
		}

		batch.Images = append(batch.Images, newBatchImage(header.Filename, data))
	}

	h.batchStore.Set(batch.ID, batch)
	slog.Info("Batch created", "batch_id", batch.ID, "images", len(batch.Images))

	h.writeJSON(w, map[string]any{
		"batch_id": batch.ID,
		"images":   len(batch.Images),
	})
}

func (h *Handler) handleURLBatch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ImageURLs []string `json:"image_urls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.ImageURLs) == 0 {
		h.writeError(w, "image_urls is required", http.StatusBadRequest)
		return
	}

	batch := &models.BatchSession{
		ID:        uuid.NewString(),
		Images:    make([]models.BatchImage, 0, len(request.ImageURLs)),
		CreatedAt: time.Now(),
	}

	for _, url := range request.ImageURLs {
		data, err := h.fetcher.Fetch(url)
		if err != nil {
			h.writeError(w, "Failed to fetch "+url+": "+err.Error(), http.StatusBadRequest)
			return
		}

		parts := strings.Split(url, "/")
		filename := parts[len(parts)-1]
		if filename == "" {
			filename = "image.jpg"
		}
		batch.Images = append(batch.Images, newBatchImage(filename, data))
	}

	h.batchStore.Set(batch.ID, batch)
	slog.Info("Batch created from URLs", "batch_id", batch.ID, "images", len(batch.Images))

	h.writeJSON(w, map[string]any{
		"batch_id": batch.ID,
		"images":   len(batch.Images),
		"source":   "url",
	})
}

func newBatchImage(filename string, data []byte) models.BatchImage {
	width, height := images.Dimensions(data)
	return models.BatchImage{
		ID:       uuid.NewString(),
		Filename: filename,
		Width:    width,
		Height:   height,
		Size:     len(data),
		Data:     data,
	}
}

func (h *Handler) HandleBatchDetail(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/batches/")

	if batchID, ok := strings.CutSuffix(path, "/generate"); ok {
		h.handleGenerate(w, r, batchID)
		return
	}

	batch, ok := h.getBatchOrError(w, path)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		h.writeJSON(w, batch)
	case "PUT":
		var update struct {
			ImageID  string                 `json:"image_id"`
			Metadata *models.MetadataResult `json:"metadata"`
		}
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if update.Metadata == nil || update.ImageID == "" {
			h.writeError(w, "image_id and metadata are required", http.StatusBadRequest)
			return
		}
		if !h.batchStore.SetImageMetadata(batch.ID, update.ImageID, update.Metadata) {
			h.writeError(w, "Image not found", http.StatusNotFound)
			return
		}
		updated, _ := h.batchStore.Get(batch.ID)
		h.writeJSON(w, updated)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleGenerate runs metadata generation over every image in the
// batch that does not yet have metadata. Images the provider could not
// serve stay metadata-less; the response reports both counts.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request, batchID string) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	batch, ok := h.getBatchOrError(w, batchID)
	if !ok {
		return
	}

	pending := make([]metadata.ImageFile, 0, len(batch.Images))
	pendingIDs := make([]string, 0, len(batch.Images))
	for _, img := range batch.Images {
		if img.Metadata == nil {
			pending = append(pending, metadata.ImageFile{Name: img.Filename, Data: img.Data})
			pendingIDs = append(pendingIDs, img.ID)
		}
	}

	generated := 0
	err := h.metaSvc.GenerateSequence(r.Context(), pending, h.apiKey(), func(i int, result *models.MetadataResult, err error) {
		if err != nil {
			slog.Error("Metadata generation failed", "batch_id", batchID, "image", pending[i].Name, "err", err)
			return
		}
		h.batchStore.SetImageMetadata(batchID, pendingIDs[i], result)
		generated++
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, metadata.ErrMissingCredential) {
			status = http.StatusBadRequest
		}
		h.writeError(w, "Generation failed: "+err.Error(), status)
		return
	}

	updated, _ := h.batchStore.Get(batchID)
	h.writeJSON(w, map[string]any{
		"batch":     updated,
		"generated": generated,
		"failed":    len(pending) - generated,
	})
}
