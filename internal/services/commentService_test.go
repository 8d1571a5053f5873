package services

import (
	"context"
	"errors"
	"testing"

	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/repository/repotest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommentLifecycle(t *testing.T) {
	ctx := context.Background()
	comments := repotest.NewComments()
	users := repotest.NewUsers(models.User{Email: "mod@x.com", Role: models.RoleAdmin})
	svc := NewCommentService(comments, users)
	postID := primitive.NewObjectID()

	res, err := svc.AddComment(ctx, "a@x.com", models.Comment{PostID: postID, CommentText: "nice", Reported: true, Feedback: "x"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id := res.InsertedID.(primitive.ObjectID)

	list, _ := svc.ListComments(ctx, postID)
	if len(list) != 1 || list[0].Reported || list[0].Feedback != "" || list[0].Email != "a@x.com" {
		t.Fatalf("unexpected comments %+v", list)
	}
	if other, _ := svc.ListComments(ctx, primitive.NewObjectID()); len(other) != 0 {
		t.Errorf("expected no comments for another post, got %d", len(other))
	}

	if _, err := svc.ReportComment(ctx, id, "spam"); err != nil {
		t.Fatalf("report: %v", err)
	}
	stored, _ := comments.FindByID(ctx, id)
	if !stored.Reported || stored.Feedback != "spam" {
		t.Errorf("expected reported comment, got %+v", stored)
	}
	if _, err := svc.ReportComment(ctx, primitive.NewObjectID(), "spam"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	if _, err := svc.DeleteComment(ctx, "b@x.com", id); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}
	if _, err := svc.DeleteComment(ctx, "mod@x.com", id); err != nil {
		t.Errorf("admin delete: %v", err)
	}
	if _, err := svc.DeleteComment(ctx, "a@x.com", id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestAddCommentValidation(t *testing.T) {
	svc := NewCommentService(repotest.NewComments(), repotest.NewUsers())
	postID := primitive.NewObjectID()

	cases := map[string]struct {
		input models.Comment
		kind  error
	}{
		"no post":      {models.Comment{CommentText: "hi"}, ErrInvalidInput},
		"no text":      {models.Comment{PostID: postID}, ErrInvalidInput},
		"someone else": {models.Comment{PostID: postID, CommentText: "hi", Email: "b@x.com"}, ErrForbidden},
	}
	for name, c := range cases {
		if _, err := svc.AddComment(context.Background(), "a@x.com", c.input); !errors.Is(err, c.kind) {
			t.Errorf("%s: expected %v, got %v", name, c.kind, err)
		}
	}
}
