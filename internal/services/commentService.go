package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arzan03/ThreadHive/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentService struct {
	comments CommentRepository
	users    UserRepository
	now      func() time.Time
}

func NewCommentService(comments CommentRepository, users UserRepository) *CommentService {
	return &CommentService{comments: comments, users: users, now: time.Now}
}

// AddComment stores a comment written by requester. New comments are never
// reported and carry no feedback.
func (s *CommentService) AddComment(ctx context.Context, requester string, input models.Comment) (models.InsertResult, error) {
	if input.PostID.IsZero() {
		return models.InsertResult{}, Errorf(ErrInvalidInput, "postId is required")
	}
	if strings.TrimSpace(input.CommentText) == "" {
		return models.InsertResult{}, Errorf(ErrInvalidInput, "commentText is required")
	}
	if input.Email != "" && input.Email != requester {
		return models.InsertResult{}, Errorf(ErrForbidden, "comments can only be written as yourself")
	}

	comment := &models.Comment{
		PostID:      input.PostID,
		Email:       requester,
		CommentText: input.CommentText,
		Feedback:    "",
		Reported:    false,
		Date:        s.now().UTC(),
	}
	id, err := s.comments.Insert(ctx, comment)
	if err != nil {
		return models.InsertResult{}, err
	}
	return inserted(id), nil
}

func (s *CommentService) ListComments(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// DeleteComment removes a comment written by requester, or any comment when
// requester is an admin.
func (s *CommentService) DeleteComment(ctx context.Context, requester string, id primitive.ObjectID) (models.DeleteResult, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return models.DeleteResult{}, Errorf(ErrNotFound, "comment not found")
	}
	if err != nil {
		return models.DeleteResult{}, err
	}
	if comment.Email != requester {
		admin, err := isAdmin(ctx, s.users, requester)
		if err != nil {
			return models.DeleteResult{}, err
		}
		if !admin {
			return models.DeleteResult{}, Errorf(ErrForbidden, "only the author or an admin can delete this comment")
		}
	}
	return s.comments.Delete(ctx, id)
}

func (s *CommentService) ReportComment(ctx context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error) {
	res, err := s.comments.Report(ctx, id, strings.TrimSpace(feedback))
	if err != nil {
		return res, err
	}
	if res.MatchedCount == 0 {
		return res, Errorf(ErrNotFound, "comment not found")
	}
	return res, nil
}
