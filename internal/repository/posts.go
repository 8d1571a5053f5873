package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/arzan03/ThreadHive/internal/db"
	"github.com/arzan03/ThreadHive/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository struct {
	collection db.CollectionHelper
}

func NewPostRepository(collection db.CollectionHelper) *PostRepository {
	return &PostRepository{collection: collection}
}

func (r *PostRepository) Insert(ctx context.Context, post *models.Post) (primitive.ObjectID, error) {
	id, err := insertOne(ctx, r.collection, post)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert post: %w", err)
	}
	post.ID = id
	return id, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post := &models.Post{}
	if err := findOne(ctx, r.collection, bson.M{"_id": id}, post); err != nil {
		return nil, fmt.Errorf("find post %s: %w", id.Hex(), err)
	}
	return post, nil
}

// ListRecent returns every post, newest first.
func (r *PostRepository) ListRecent(ctx context.Context) ([]models.Post, error) {
	return r.find(ctx, bson.M{}, recentFirst())
}

// ListByOwner returns the posts of one user, newest first. A limit of zero
// means no limit.
func (r *PostRepository) ListByOwner(ctx context.Context, email string, limit int64) ([]models.Post, error) {
	opts := recentFirst()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.find(ctx, bson.M{"userEmail": email}, opts)
}

// SearchByTag matches tag as a literal, case-insensitive substring.
func (r *PostRepository) SearchByTag(ctx context.Context, tag string) ([]models.Post, error) {
	filter := bson.M{"tag": primitive.Regex{Pattern: regexp.QuoteMeta(tag), Options: "i"}}
	return r.find(ctx, filter, recentFirst())
}

func (r *PostRepository) CountByOwner(ctx context.Context, email string) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"userEmail": email})
	if err != nil {
		return 0, fmt.Errorf("count posts of %s: %w", email, err)
	}
	return n, nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := deleteOne(ctx, r.collection, bson.M{"_id": id})
	if err != nil {
		return res, fmt.Errorf("delete post %s: %w", id.Hex(), err)
	}
	return res, nil
}

// Increment adds one to the selected vote counter of a post.
func (r *PostRepository) Increment(ctx context.Context, id primitive.ObjectID, vote models.Vote) (models.UpdateResult, error) {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: string(vote), Value: 1}}}}
	res, err := updateOne(ctx, r.collection, bson.M{"_id": id}, update)
	if err != nil {
		return res, fmt.Errorf("%s post %s: %w", vote, id.Hex(), err)
	}
	return res, nil
}

func (r *PostRepository) SetCommentCount(ctx context.Context, id primitive.ObjectID, count int64) (models.UpdateResult, error) {
	res, err := updateOne(ctx, r.collection, bson.M{"_id": id}, bson.M{"$set": bson.M{"postCount": count}})
	if err != nil {
		return res, fmt.Errorf("set comment count of %s: %w", id.Hex(), err)
	}
	return res, nil
}

func (r *PostRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Post, error) {
	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func recentFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
}
