package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arzan03/ThreadHive/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const recentPostsLimit = 3

type PostService struct {
	posts    PostRepository
	users    UserRepository
	comments CommentRepository
	now      func() time.Time
}

func NewPostService(posts PostRepository, users UserRepository, comments CommentRepository) *PostService {
	return &PostService{posts: posts, users: users, comments: comments, now: time.Now}
}

// CreatePost stores a post owned by requester after applying the membership
// quota. The count is read from the store on every call, so two concurrent
// requests from one user can both pass the check.
func (s *PostService) CreatePost(ctx context.Context, requester string, post models.Post) (models.InsertResult, error) {
	var res models.InsertResult

	switch post.UserEmail {
	case "":
		post.UserEmail = requester
	case requester:
	default:
		return res, Errorf(ErrForbidden, "posts can only be created for your own account")
	}

	user, err := s.users.FindByEmail(ctx, requester)
	if errors.Is(err, ErrNotFound) {
		return res, Errorf(ErrNotFound, "user is not registered")
	}
	if err != nil {
		return res, err
	}

	if !user.Membership {
		count, err := s.posts.CountByOwner(ctx, requester)
		if err != nil {
			return res, err
		}
		if err := CheckPostQuota(user.Membership, count); err != nil {
			return res, err
		}
	}

	post.ID = primitive.NilObjectID
	post.SetFields(post.Fields)
	post.UpVote, post.DownVote, post.PostCount = 0, 0, 0
	if post.Date.IsZero() {
		post.Date = s.now().UTC()
	}

	id, err := s.posts.Insert(ctx, &post)
	if err != nil {
		return res, err
	}
	return inserted(id), nil
}

func (s *PostService) GetPost(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, Errorf(ErrNotFound, "post not found")
	}
	return post, err
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.ListRecent(ctx)
}

func (s *PostService) ListUserPosts(ctx context.Context, email string) ([]models.Post, error) {
	return s.posts.ListByOwner(ctx, email, 0)
}

// RecentUserPosts returns the three newest posts of a user.
func (s *PostService) RecentUserPosts(ctx context.Context, email string) ([]models.Post, error) {
	return s.posts.ListByOwner(ctx, email, recentPostsLimit)
}

// SearchByTag is the one listing where an empty result is an error.
func (s *PostService) SearchByTag(ctx context.Context, tag string) ([]models.Post, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, Errorf(ErrInvalidInput, "tag query is required")
	}
	posts, err := s.posts.SearchByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, Errorf(ErrNotFound, "no posts found for tag %q", tag)
	}
	return posts, nil
}

// PostUsage reports membership and post count; unknown users have neither.
func (s *PostService) PostUsage(ctx context.Context, email string) (models.PostUsage, error) {
	if email == "" {
		return models.PostUsage{}, nil
	}
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return models.PostUsage{}, nil
	}
	if err != nil {
		return models.PostUsage{}, err
	}
	count, err := s.posts.CountByOwner(ctx, email)
	if err != nil {
		return models.PostUsage{}, err
	}
	return models.PostUsage{Membership: user.Membership, PostCount: count}, nil
}

// DeletePost removes a post owned by requester, or any post when requester is
// an admin. Comments of the post are left in place.
func (s *PostService) DeletePost(ctx context.Context, requester string, id primitive.ObjectID) (models.DeleteResult, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	if post.UserEmail != requester {
		admin, err := isAdmin(ctx, s.users, requester)
		if err != nil {
			return models.DeleteResult{}, err
		}
		if !admin {
			return models.DeleteResult{}, Errorf(ErrForbidden, "only the author or an admin can delete this post")
		}
	}
	return s.posts.Delete(ctx, id)
}

// Vote increments one counter by one. Votes are not tracked per user.
func (s *PostService) Vote(ctx context.Context, id primitive.ObjectID, vote models.Vote) (models.UpdateResult, error) {
	res, err := s.posts.Increment(ctx, id, vote)
	if err != nil {
		return res, err
	}
	if res.MatchedCount == 0 {
		return res, Errorf(ErrNotFound, "post not found")
	}
	return res, nil
}

// RecountComments stores the current number of comments in the post's
// postCount field.
func (s *PostService) RecountComments(ctx context.Context, postID primitive.ObjectID) (models.UpdateResult, error) {
	count, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return models.UpdateResult{}, err
	}
	res, err := s.posts.SetCommentCount(ctx, postID, count)
	if err != nil {
		return res, err
	}
	if res.MatchedCount == 0 {
		return res, Errorf(ErrNotFound, "post not found")
	}
	return res, nil
}
