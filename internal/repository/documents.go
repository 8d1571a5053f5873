package repository

import (
	"context"
	"fmt"

	"github.com/arzan03/ThreadHive/internal/db"
	"github.com/arzan03/ThreadHive/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentRepository stores schemaless records: announcements, tags,
// warnings and payment logs.
type DocumentRepository struct {
	name       string
	collection db.CollectionHelper
}

func NewDocumentRepository(name string, collection db.CollectionHelper) *DocumentRepository {
	return &DocumentRepository{name: name, collection: collection}
}

// Insert assigns a fresh _id, replacing any the caller supplied.
func (r *DocumentRepository) Insert(ctx context.Context, doc models.Document) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	doc["_id"] = id
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", r.name, err)
	}
	return id, nil
}

func (r *DocumentRepository) List(ctx context.Context) ([]models.Document, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.name, err)
	}
	defer cur.Close(ctx)

	docs := []models.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.name, err)
	}
	return docs, nil
}
