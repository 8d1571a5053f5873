package services

import (
	"context"
	"errors"
	"strings"

	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/asaskevich/govalidator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// RegisterUser stores a new user unless the email is already known, in which
// case existed is true and nothing is written. Role and membership are never
// taken from the client.
func (s *UserService) RegisterUser(ctx context.Context, input models.User) (res models.InsertResult, existed bool, err error) {
	email := strings.TrimSpace(input.Email)
	if !govalidator.IsEmail(email) {
		return res, false, Errorf(ErrInvalidInput, "a valid email is required")
	}

	_, err = s.users.FindByEmail(ctx, email)
	if err == nil {
		return res, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return res, false, err
	}

	// Badge and status are set only by GrantMembership.
	user := &models.User{
		Name:  strings.TrimSpace(input.Name),
		Email: email,
		Image: input.Image,
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return res, false, err
	}
	return inserted(id), false, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, Errorf(ErrNotFound, "user not found")
	}
	return user, err
}

// IsAdmin answers the admin check for the caller's own email only.
func (s *UserService) IsAdmin(ctx context.Context, requester, email string) (bool, error) {
	if requester != email {
		return false, Errorf(ErrForbidden, "forbidden access")
	}
	return isAdmin(ctx, s.users, email)
}

// RequireAdmin reads the user on every call; role changes apply immediately.
func (s *UserService) RequireAdmin(ctx context.Context, email string) error {
	admin, err := isAdmin(ctx, s.users, email)
	if err != nil {
		return err
	}
	if !admin {
		return Errorf(ErrForbidden, "forbidden access")
	}
	return nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (models.UpdateResult, error) {
	res, err := s.users.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		return res, err
	}
	if res.MatchedCount == 0 {
		return res, Errorf(ErrNotFound, "user %s not found", id.Hex())
	}
	return res, nil
}
