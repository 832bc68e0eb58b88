package business

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store exposes business and document retrieval for the chat pipeline.
type Store interface {
	Create(b Business) Business
	FindByID(id string) (Business, bool)
	DocumentsByBusiness(id string) []Document
	AddDocument(businessID string, doc Document) (Document, bool)
}

// MemoryStore implements Store with in-memory maps, suitable for MVP.
type MemoryStore struct {
	mu         sync.RWMutex
	businesses map[string]Business
	documents  map[string][]Document
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		businesses: make(map[string]Business),
		documents:  make(map[string][]Document),
	}
}

// Create registers a business, assigning an identifier when absent.
func (s *MemoryStore) Create(b Business) Business {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.businesses[b.ID] = b
	s.mu.Unlock()

	return b
}

// FindByID looks up a business by identifier.
func (s *MemoryStore) FindByID(id string) (Business, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.businesses[id]
	return b, ok
}

// DocumentsByBusiness returns the knowledge documents for a business in
// insertion order. A business with no documents yields an empty slice.
func (s *MemoryStore) DocumentsByBusiness(id string) []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.documents[id]
	copied := make([]Document, len(docs))
	copy(copied, docs)
	return copied
}

// AddDocument appends a knowledge document to a business. Returns false
// when the business does not exist.
func (s *MemoryStore) AddDocument(businessID string, doc Document) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.businesses[businessID]; !ok {
		return Document{}, false
	}

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	s.documents[businessID] = append(s.documents[businessID], doc)
	return doc, true
}
