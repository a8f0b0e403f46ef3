package mocks

import (
	"arogyanetra-service/internal/app/models"
	"bytes"
	"context"
	"io"
	"sync"
	"time"
)

type AuditPublisher struct {
	mu     sync.Mutex
	Events []models.AuditEvent
}

func (p *AuditPublisher) Publish(ctx context.Context, event models.AuditEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
}

func (p *AuditPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.Events))
	for _, event := range p.Events {
		types = append(types, event.Type)
	}
	return types
}

// Storage is an in-memory object store keyed by bucket and object key.
type Storage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Buckets map[string]bool
	PutErr  error
}

func NewStorage() *Storage {
	return &Storage{Objects: make(map[string][]byte), Buckets: make(map[string]bool)}
}

func objectID(bucketName, objectKey string) string {
	return bucketName + "/" + objectKey
}

func (s *Storage) PutObject(ctx context.Context, bucketName, objectKey string, content []byte, contentType string) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[objectID(bucketName, objectKey)] = append([]byte(nil), content...)
	return nil
}

func (s *Storage) GetObject(ctx context.Context, bucketName, objectKey string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.Objects[objectID(bucketName, objectKey)]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *Storage) RemoveObject(ctx context.Context, bucketName, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, objectID(bucketName, objectKey))
	return nil
}

func (s *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectKey string, expiryTime time.Duration) (string, error) {
	return "https://storage.test/" + objectID(bucketName, objectKey), nil
}

func (s *Storage) EnsureBucket(ctx context.Context, bucketName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Buckets[bucketName] = true
	return nil
}

func (s *Storage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Objects)
}

// StagingRepository keeps batches in memory.
type StagingRepository struct {
	mu      sync.Mutex
	Batches map[string]models.StagingBatch
}

func NewStagingRepository() *StagingRepository {
	return &StagingRepository{Batches: make(map[string]models.StagingBatch)}
}

func (r *StagingRepository) FindByUserID(ctx context.Context, userID string) (*models.StagingBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch, ok := r.Batches[userID]
	if !ok {
		return nil, nil
	}
	batch.Files = append([]models.StagedFile(nil), batch.Files...)
	return &batch, nil
}

func (r *StagingRepository) Save(ctx context.Context, batch *models.StagingBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *batch
	stored.Files = append([]models.StagedFile(nil), batch.Files...)
	r.Batches[batch.UserID] = stored
	return nil
}

func (r *StagingRepository) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Batches, userID)
	return nil
}

func (r *StagingRepository) FindUpdatedBefore(ctx context.Context, before time.Time) ([]models.StagingBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.StagingBatch, 0)
	for _, batch := range r.Batches {
		if batch.UpdatedAt.Before(before) {
			result = append(result, batch)
		}
	}
	return result, nil
}

func (r *StagingRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}
