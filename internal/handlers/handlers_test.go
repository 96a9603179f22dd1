package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/microstock-labs/stockmeta/internal/config"
	"github.com/microstock-labs/stockmeta/internal/images"
	"github.com/microstock-labs/stockmeta/internal/keywords"
	"github.com/microstock-labs/stockmeta/internal/metadata"
	"github.com/microstock-labs/stockmeta/internal/models"
	"github.com/microstock-labs/stockmeta/internal/notify"
	"github.com/microstock-labs/stockmeta/internal/providers"
	"github.com/microstock-labs/stockmeta/internal/seo"
	"github.com/microstock-labs/stockmeta/internal/storage"
)

type scriptedGenerator struct {
	text string
	err  error
}

func (g scriptedGenerator) GenerateContent(ctx context.Context, req providers.Request) (string, error) {
	return g.text, g.err
}

func newTestHandler(gen providers.Generator, key string) *Handler {
	cfg, err := config.LoadOrDefault("")
	if err != nil {
		panic(err)
	}
	return &Handler{
		batchStore: storage.New(),
		metaSvc:    metadata.NewService(cfg.MetadataConfig(), gen, notify.Discard{}),
		optimizer:  seo.New(keywords.NewAnalyzer(rand.New(rand.NewSource(1)))),
		fetcher:    images.NewFetcher(),
		apiKey:     func() string { return key },
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func uploadBatch(t *testing.T, h *Handler, filenames ...string) string {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, name := range filenames {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		if _, err := part.Write(pngBytes(t)); err != nil {
			t.Fatalf("writing form file: %v", err)
		}
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/api/batches", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	h.HandleBatches(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("upload returned %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		BatchID string `json:"batch_id"`
		Images  int    `json:"images"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding upload response: %v", err)
	}
	if resp.Images != len(filenames) {
		t.Fatalf("uploaded %d images, response says %d", len(filenames), resp.Images)
	}
	return resp.BatchID
}

func TestUploadAndFetchBatch(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "key")
	batchID := uploadBatch(t, h, "a.png", "b.png")

	req := httptest.NewRequest("GET", "/api/batches/"+batchID, nil)
	rec := httptest.NewRecorder()
	h.HandleBatchDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("detail returned %d", rec.Code)
	}
	var batch models.BatchSession
	if err := json.Unmarshal(rec.Body.Bytes(), &batch); err != nil {
		t.Fatalf("decoding batch: %v", err)
	}
	if len(batch.Images) != 2 {
		t.Fatalf("batch has %d images, want 2", len(batch.Images))
	}
	if batch.Images[0].Width != 40 || batch.Images[0].Height != 30 {
		t.Errorf("dimensions = %dx%d, want 40x30", batch.Images[0].Width, batch.Images[0].Height)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "key")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile("files", "notes.txt")
	part.Write([]byte("just some text"))
	writer.Close()

	req := httptest.NewRequest("POST", "/api/batches", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	h.HandleBatches(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-image upload, got %d", rec.Code)
	}
}

func TestBatchNotFound(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "key")

	req := httptest.NewRequest("GET", "/api/batches/nope", nil)
	rec := httptest.NewRecorder()
	h.HandleBatchDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateImageMetadata(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "key")
	batchID := uploadBatch(t, h, "a.png")

	batch, _ := h.batchStore.Get(batchID)
	update := map[string]any{
		"image_id": batch.Images[0].ID,
		"metadata": models.MetadataResult{
			Title:       "Edited Title for the Photo",
			Description: "Edited description.",
			Keywords:    []string{"edited"},
			Category:    "Business",
		},
	}
	body, _ := json.Marshal(update)

	req := httptest.NewRequest("PUT", "/api/batches/"+batchID, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleBatchDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}
	stored, _ := h.batchStore.Get(batchID)
	if stored.Images[0].Metadata == nil || stored.Images[0].Metadata.Title != "Edited Title for the Photo" {
		t.Errorf("metadata not stored: %+v", stored.Images[0].Metadata)
	}
}

func TestGenerateAttachesMetadata(t *testing.T) {
	gen := scriptedGenerator{text: "TITLE- Generated Office Scene\nCATEGORY- Business\nKEYWORDS- office, desk, work\nDESCRIPTION- An office scene."}
	h := newTestHandler(gen, "key")
	batchID := uploadBatch(t, h, "a.png")

	req := httptest.NewRequest("POST", "/api/batches/"+batchID+"/generate", nil)
	rec := httptest.NewRecorder()
	h.HandleBatchDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("generate returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Generated int `json:"generated"`
		Failed    int `json:"failed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Generated != 1 || resp.Failed != 0 {
		t.Errorf("generated=%d failed=%d", resp.Generated, resp.Failed)
	}

	batch, _ := h.batchStore.Get(batchID)
	if batch.Images[0].Metadata == nil || batch.Images[0].Metadata.Title != "Generated Office Scene" {
		t.Errorf("metadata = %+v", batch.Images[0].Metadata)
	}
}

func TestGenerateWithoutKey(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "")
	batchID := uploadBatch(t, h, "a.png")

	req := httptest.NewRequest("POST", "/api/batches/"+batchID+"/generate", nil)
	rec := httptest.NewRecorder()
	h.HandleBatchDetail(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without API key, got %d", rec.Code)
	}
}

func TestOptimizeEndpoint(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "key")

	body, _ := json.Marshal(map[string]any{
		"metadata": models.MetadataResult{
			Title:       "Business Team",
			Description: "A business team collaborates.",
			Keywords:    []string{"business", "team", "collaboration"},
			Category:    "Business",
		},
	})
	req := httptest.NewRequest("POST", "/api/optimize", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleOptimize(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("optimize returned %d: %s", rec.Code, rec.Body.String())
	}
	var result models.SeoOptimizedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if len(result.Keywords) == 0 || len(result.Keywords) > 50 {
		t.Errorf("keyword count = %d", len(result.Keywords))
	}
	if len(result.Keywords) != len(result.SeoKeywords) {
		t.Errorf("keywords and seo_keywords misaligned: %d vs %d", len(result.Keywords), len(result.SeoKeywords))
	}
}

func TestOptimizeRequiresKeywords(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "key")

	body, _ := json.Marshal(map[string]any{"metadata": models.MetadataResult{Title: "x"}})
	req := httptest.NewRequest("POST", "/api/optimize", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleOptimize(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "key")

	body, _ := json.Marshal(map[string]any{
		"results": []models.ExportableResult{{
			Filename:    "photo.png",
			Title:       "City Street",
			Description: "A city street.",
			Keywords:    []string{"city", "street"},
			Category:    "Wildlife",
		}},
	})
	req := httptest.NewRequest("POST", "/api/export/shutterstock", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleExport(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("export returned %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "shutterstock-metadata-") {
		t.Errorf("content disposition = %q", cd)
	}
	csv := rec.Body.String()
	if !strings.Contains(csv, "Animals/Wildlife") {
		t.Errorf("category not mapped: %s", csv)
	}
	if !strings.Contains(csv, "photo.eps") {
		t.Errorf("extension not rewritten: %s", csv)
	}
}

func TestExportUnknownPlatform(t *testing.T) {
	h := newTestHandler(scriptedGenerator{}, "key")

	req := httptest.NewRequest("POST", "/api/export/istock", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.HandleExport(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
