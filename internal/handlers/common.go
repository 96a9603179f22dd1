package handlers

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/microstock-labs/stockmeta/internal/config"
	"github.com/microstock-labs/stockmeta/internal/gemini"
	"github.com/microstock-labs/stockmeta/internal/images"
	"github.com/microstock-labs/stockmeta/internal/keywords"
	"github.com/microstock-labs/stockmeta/internal/metadata"
	"github.com/microstock-labs/stockmeta/internal/models"
	"github.com/microstock-labs/stockmeta/internal/notify"
	"github.com/microstock-labs/stockmeta/internal/seo"
	"github.com/microstock-labs/stockmeta/internal/storage"
)

type Handler struct {
	batchStore *storage.BatchStore
	metaSvc    *metadata.Service
	optimizer  *seo.Optimizer
	fetcher    *images.Fetcher
	apiKey     func() string
}

func New(cfg *config.Config) *Handler {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Handler{
		batchStore: storage.New(),
		metaSvc:    metadata.NewService(cfg.MetadataConfig(), gemini.New(), notify.Slog{}),
		optimizer:  seo.New(keywords.NewAnalyzer(rng)),
		fetcher:    images.NewFetcher(),
		apiKey:     cfg.APIKey,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Batch helpers
func (h *Handler) getBatchOrError(w http.ResponseWriter, batchID string) (*models.BatchSession, bool) {
	batch, exists := h.batchStore.Get(batchID)
	if !exists {
		h.writeError(w, "Batch not found", http.StatusNotFound)
		return nil, false
	}
	return batch, true
}
