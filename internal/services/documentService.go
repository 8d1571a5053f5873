package services

import (
	"context"

	"github.com/arzan03/ThreadHive/internal/models"
)

// DocumentService is the insert-and-list surface of the announcements, tags
// and warnings collections.
type DocumentService struct {
	kind string
	docs DocumentRepository
}

func NewDocumentService(kind string, docs DocumentRepository) *DocumentService {
	return &DocumentService{kind: kind, docs: docs}
}

func (s *DocumentService) Create(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	delete(doc, "_id")
	if len(doc) == 0 {
		return models.InsertResult{}, Errorf(ErrInvalidInput, "%s body is empty", s.kind)
	}
	id, err := s.docs.Insert(ctx, doc)
	if err != nil {
		return models.InsertResult{}, err
	}
	return inserted(id), nil
}

func (s *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	return s.docs.List(ctx)
}
