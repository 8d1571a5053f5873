package services

import (
	"context"
	"errors"
	"testing"

	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/repository/repotest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	users := repotest.NewUsers()
	svc := NewUserService(users)

	res, existed, err := svc.RegisterUser(ctx, models.User{
		Name: "Ann", Email: "a@x.com", Role: models.RoleAdmin, Membership: true,
		Badge: "gold.jpg", Status: "Active",
	})
	if err != nil || existed || res.InsertedID == nil {
		t.Fatalf("unexpected first registration %+v %v %v", res, existed, err)
	}

	user, _ := svc.GetUser(ctx, "a@x.com")
	if user.IsAdmin() || user.Membership {
		t.Errorf("role and membership must not come from the client: %+v", user)
	}
	if user.Badge != "" || user.Status != "" {
		t.Errorf("badge and status must not come from the client: %+v", user)
	}

	_, existed, err = svc.RegisterUser(ctx, models.User{Email: "a@x.com"})
	if err != nil || !existed {
		t.Fatalf("expected existing user, got %v %v", existed, err)
	}
	if n, _ := users.Count(ctx); n != 1 {
		t.Errorf("expected one stored user, got %d", n)
	}

	if _, _, err := svc.RegisterUser(ctx, models.User{Email: "not-an-email"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestAdminChecks(t *testing.T) {
	ctx := context.Background()
	users := repotest.NewUsers(models.User{Email: "a@x.com"}, models.User{Email: "boss@x.com", Role: models.RoleAdmin})
	svc := NewUserService(users)

	if _, err := svc.IsAdmin(ctx, "a@x.com", "boss@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("asking about another user should be forbidden, got %v", err)
	}
	if admin, err := svc.IsAdmin(ctx, "boss@x.com", "boss@x.com"); err != nil || !admin {
		t.Errorf("expected admin, got %v %v", admin, err)
	}
	if err := svc.RequireAdmin(ctx, "a@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}
	if err := svc.RequireAdmin(ctx, "ghost@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("unknown user should be forbidden, got %v", err)
	}

	user, _ := svc.GetUser(ctx, "a@x.com")
	if _, err := svc.PromoteToAdmin(ctx, user.ID); err != nil {
		t.Fatalf("promote: %v", err)
	}
	if err := svc.RequireAdmin(ctx, "a@x.com"); err != nil {
		t.Errorf("promotion should apply immediately, got %v", err)
	}
	if _, err := svc.PromoteToAdmin(ctx, primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := svc.GetUser(ctx, "ghost@x.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
