package repository

import (
	"context"
	"fmt"

	"github.com/arzan03/ThreadHive/internal/db"
	"github.com/arzan03/ThreadHive/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository struct {
	collection db.CollectionHelper
}

func NewUserRepository(collection db.CollectionHelper) *UserRepository {
	return &UserRepository{collection: collection}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	if err := findOne(ctx, r.collection, bson.M{"email": email}, user); err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	return user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	id, err := insertOne(ctx, r.collection, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	res, err := updateOne(ctx, r.collection, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return res, fmt.Errorf("set role of %s: %w", id.Hex(), err)
	}
	return res, nil
}

// GrantMembership marks the user with the given email as a paying member.
func (r *UserRepository) GrantMembership(ctx context.Context, email, badge, status string) (models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"badge":      badge,
		"membership": true,
		"status":     status,
	}}
	res, err := updateOne(ctx, r.collection, bson.M{"email": email}, update)
	if err != nil {
		return res, fmt.Errorf("grant membership to %s: %w", email, err)
	}
	return res, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
