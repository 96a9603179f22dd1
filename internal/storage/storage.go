package storage

import (
	"sync"

	"github.com/microstock-labs/stockmeta/internal/models"
)

type BatchStore struct {
	batches map[string]*models.BatchSession
	mu      sync.RWMutex
}

func New() *BatchStore {
	return &BatchStore{
		batches: make(map[string]*models.BatchSession),
	}
}

func (s *BatchStore) Get(batchID string) (*models.BatchSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	batch, exists := s.batches[batchID]
	return batch, exists
}

func (s *BatchStore) Set(batchID string, batch *models.BatchSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[batchID] = batch
}

func (s *BatchStore) GetAll() map[string]*models.BatchSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.BatchSession, len(s.batches))
	for k, v := range s.batches {
		result[k] = v
	}
	return result
}

func (s *BatchStore) Delete(batchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, batchID)
}

// SetImageMetadata attaches generated metadata to one image in a
// batch. Returns false when the batch or image does not exist.
func (s *BatchStore) SetImageMetadata(batchID, imageID string, metadata *models.MetadataResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, exists := s.batches[batchID]
	if !exists {
		return false
	}
	for i := range batch.Images {
		if batch.Images[i].ID == imageID {
			batch.Images[i].Metadata = metadata
			return true
		}
	}
	return false
}
