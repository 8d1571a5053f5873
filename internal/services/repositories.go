package services

import (
	"context"
	"errors"

	"github.com/arzan03/ThreadHive/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storage contracts of the services. The Mongo implementations live in
// internal/repository, in-memory ones in internal/repository/repotest.

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error)
	GrantMembership(ctx context.Context, email, badge, status string) (models.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

type PostRepository interface {
	Insert(ctx context.Context, post *models.Post) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	ListRecent(ctx context.Context) ([]models.Post, error)
	ListByOwner(ctx context.Context, email string, limit int64) ([]models.Post, error)
	SearchByTag(ctx context.Context, tag string) ([]models.Post, error)
	CountByOwner(ctx context.Context, email string) (int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
	Increment(ctx context.Context, id primitive.ObjectID, vote models.Vote) (models.UpdateResult, error)
	SetCommentCount(ctx context.Context, id primitive.ObjectID, count int64) (models.UpdateResult, error)
}

type CommentRepository interface {
	Insert(ctx context.Context, comment *models.Comment) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
	Report(ctx context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error)
}

type DocumentRepository interface {
	Insert(ctx context.Context, doc models.Document) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Document, error)
}

// isAdmin reports whether email belongs to an admin. An unknown email is
// simply not an admin.
func isAdmin(ctx context.Context, users UserRepository, email string) (bool, error) {
	user, err := users.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func inserted(id primitive.ObjectID) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: id}
}
