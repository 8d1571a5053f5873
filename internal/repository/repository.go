// Package repository implements the forum collections on top of MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/ThreadHive/internal/db"
	"github.com/arzan03/ThreadHive/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a single-document lookup matches nothing.
var ErrNotFound = errors.New("not found")

func insertOne(ctx context.Context, c db.CollectionHelper, doc interface{}) (primitive.ObjectID, error) {
	res, err := c.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.GetInsertedID().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.GetInsertedID())
	}
	return id, nil
}

func findOne(ctx context.Context, c db.CollectionHelper, filter interface{}, v interface{}) error {
	err := c.FindOne(ctx, filter).Decode(v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func updateOne(ctx context.Context, c db.CollectionHelper, filter, update interface{}) (models.UpdateResult, error) {
	res, err := c.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.GetMatchedCount(),
		ModifiedCount: res.GetModifiedCount(),
	}, nil
}

func deleteOne(ctx context.Context, c db.CollectionHelper, filter interface{}) (models.DeleteResult, error) {
	res, err := c.DeleteOne(ctx, filter)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.GetDeletedCount()}, nil
}
