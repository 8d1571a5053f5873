package repository

import (
	"context"
	"fmt"

	"github.com/arzan03/ThreadHive/internal/db"
	"github.com/arzan03/ThreadHive/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentRepository struct {
	collection db.CollectionHelper
}

func NewCommentRepository(collection db.CollectionHelper) *CommentRepository {
	return &CommentRepository{collection: collection}
}

func (r *CommentRepository) Insert(ctx context.Context, comment *models.Comment) (primitive.ObjectID, error) {
	id, err := insertOne(ctx, r.collection, comment)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert comment: %w", err)
	}
	comment.ID = id
	return id, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	comment := &models.Comment{}
	if err := findOne(ctx, r.collection, bson.M{"_id": id}, comment); err != nil {
		return nil, fmt.Errorf("find comment %s: %w", id.Hex(), err)
	}
	return comment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	cur, err := r.collection.Find(ctx, bson.M{"postId": postID})
	if err != nil {
		return nil, fmt.Errorf("find comments of %s: %w", postID.Hex(), err)
	}
	defer cur.Close(ctx)

	comments := []models.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, fmt.Errorf("count comments of %s: %w", postID.Hex(), err)
	}
	return n, nil
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := deleteOne(ctx, r.collection, bson.M{"_id": id})
	if err != nil {
		return res, fmt.Errorf("delete comment %s: %w", id.Hex(), err)
	}
	return res, nil
}

// Report flags a comment for moderation with the reporter's feedback.
func (r *CommentRepository) Report(ctx context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"reported": true, "feedback": feedback}}
	res, err := updateOne(ctx, r.collection, bson.M{"_id": id}, update)
	if err != nil {
		return res, fmt.Errorf("report comment %s: %w", id.Hex(), err)
	}
	return res, nil
}
