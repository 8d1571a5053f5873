package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=collection.go -destination=mock_collection.go -package=db

// CollectionHelper is the subset of *mongo.Collection the repositories use,
// narrowed so tests can substitute a mock.
type CollectionHelper interface {
	Find(ctx context.Context, filter interface{},
		opts ...*options.FindOptions) (CursorHelper, error)
	FindOne(ctx context.Context, filter interface{},
		opts ...*options.FindOneOptions) SingleResultHelper
	InsertOne(ctx context.Context, document interface{},
		opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{},
		opts ...*options.UpdateOptions) (UpdateResultHelper, error)
	DeleteOne(ctx context.Context, filter interface{},
		opts ...*options.DeleteOptions) (DeleteResultHelper, error)
	CountDocuments(ctx context.Context, filter interface{},
		opts ...*options.CountOptions) (int64, error)
}

type SingleResultHelper interface {
	Decode(v interface{}) error
}

type CursorHelper interface {
	Close(ctx context.Context) error
	All(ctx context.Context, results interface{}) error
}

type InsertOneResultHelper interface {
	GetInsertedID() interface{}
}

type UpdateResultHelper interface {
	GetMatchedCount() int64
	GetModifiedCount() int64
}

type DeleteResultHelper interface {
	GetDeletedCount() int64
}

type MongoCollection struct {
	Collection *mongo.Collection
}

func (mc *MongoCollection) Find(ctx context.Context, filter interface{},
	opts ...*options.FindOptions) (CursorHelper, error) {
	cur, err := mc.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoCursor{cur: cur}, nil
}

func (mc *MongoCollection) FindOne(ctx context.Context, filter interface{},
	opts ...*options.FindOneOptions) SingleResultHelper {
	return &MongoSingleResult{sr: mc.Collection.FindOne(ctx, filter, opts...)}
}

func (mc *MongoCollection) InsertOne(ctx context.Context, document interface{},
	opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := mc.Collection.InsertOne(ctx, document, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoInsertOneResult{res: res}, nil
}

func (mc *MongoCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{},
	opts ...*options.UpdateOptions) (UpdateResultHelper, error) {
	res, err := mc.Collection.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoUpdateResult{res: res}, nil
}

func (mc *MongoCollection) DeleteOne(ctx context.Context, filter interface{},
	opts ...*options.DeleteOptions) (DeleteResultHelper, error) {
	res, err := mc.Collection.DeleteOne(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoDeleteResult{res: res}, nil
}

func (mc *MongoCollection) CountDocuments(ctx context.Context, filter interface{},
	opts ...*options.CountOptions) (int64, error) {
	return mc.Collection.CountDocuments(ctx, filter, opts...)
}

type MongoCursor struct {
	cur *mongo.Cursor
}

func (mc *MongoCursor) Close(ctx context.Context) error {
	return mc.cur.Close(ctx)
}

func (mc *MongoCursor) All(ctx context.Context, results interface{}) error {
	return mc.cur.All(ctx, results)
}

type MongoSingleResult struct {
	sr *mongo.SingleResult
}

func (msr *MongoSingleResult) Decode(v interface{}) error {
	return msr.sr.Decode(v)
}

type MongoInsertOneResult struct {
	res *mongo.InsertOneResult
}

func (r *MongoInsertOneResult) GetInsertedID() interface{} {
	return r.res.InsertedID
}

type MongoUpdateResult struct {
	res *mongo.UpdateResult
}

func (r *MongoUpdateResult) GetMatchedCount() int64 {
	return r.res.MatchedCount
}

func (r *MongoUpdateResult) GetModifiedCount() int64 {
	return r.res.ModifiedCount
}

type MongoDeleteResult struct {
	res *mongo.DeleteResult
}

func (r *MongoDeleteResult) GetDeletedCount() int64 {
	return r.res.DeletedCount
}
