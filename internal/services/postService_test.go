package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/repository/repotest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func titled(title string) models.Post {
	return models.Post{Fields: models.Document{"title": title}}
}

type postFixture struct {
	posts    *repotest.Posts
	users    *repotest.Users
	comments *repotest.Comments
	svc      *PostService
}

func newPostFixture(users ...models.User) *postFixture {
	f := &postFixture{
		posts:    repotest.NewPosts(),
		users:    repotest.NewUsers(users...),
		comments: repotest.NewComments(),
	}
	f.svc = NewPostService(f.posts, f.users, f.comments)
	return f
}

func TestCreatePostQuota(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(models.User{Email: "a@x.com"})

	for i := 0; i < FreePostLimit; i++ {
		if _, err := f.svc.CreatePost(ctx, "a@x.com", titled(fmt.Sprintf("post %d", i))); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}

	_, err := f.svc.CreatePost(ctx, "a@x.com", titled("one too many"))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}
	if n, _ := f.posts.CountByOwner(ctx, "a@x.com"); n != FreePostLimit {
		t.Fatalf("expected %d stored posts, got %d", FreePostLimit, n)
	}

	if _, err := f.users.GrantMembership(ctx, "a@x.com", "gold.jpg", "Active"); err != nil {
		t.Fatalf("grant membership: %v", err)
	}
	if _, err := f.svc.CreatePost(ctx, "a@x.com", titled("member post")); err != nil {
		t.Fatalf("member should not be limited: %v", err)
	}
}

func TestCreatePostValidation(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(models.User{Email: "a@x.com"})

	cases := []struct {
		name      string
		requester string
		post      models.Post
		kind      error
	}{
		{"other owner", "a@x.com", models.Post{UserEmail: "b@x.com", Fields: models.Document{"title": "t"}}, ErrForbidden},
		{"unregistered", "ghost@x.com", titled("t"), ErrNotFound},
	}
	for _, c := range cases {
		if _, err := f.svc.CreatePost(ctx, c.requester, c.post); !errors.Is(err, c.kind) {
			t.Errorf("%s: expected %v, got %v", c.name, c.kind, err)
		}
	}
}

func TestCreatePostResetsServerFields(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(models.User{Email: "a@x.com"})

	res, err := f.svc.CreatePost(ctx, "a@x.com", models.Post{
		ID:     primitive.NewObjectID(),
		UpVote: 99,
		Fields: models.Document{"title": "hello", "upVote": 7},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := res.InsertedID.(primitive.ObjectID)

	post, err := f.svc.GetPost(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.UserEmail != "a@x.com" || post.UpVote != 0 || post.Date.IsZero() {
		t.Errorf("unexpected stored post %+v", post)
	}
	if post.Field("title") != "hello" || post.Field("upVote") != nil {
		t.Errorf("expected client title kept and counter key dropped, got %v", post.Fields)
	}
}

func TestCreatePostWithoutTitle(t *testing.T) {
	f := newPostFixture(models.User{Email: "a@x.com"})
	if _, err := f.svc.CreatePost(context.Background(), "a@x.com", models.Post{Fields: models.Document{"body": "only a body"}}); err != nil {
		t.Fatalf("posts carry whatever fields the client sends: %v", err)
	}
}

func TestVotesAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(models.User{Email: "a@x.com"})
	res, _ := f.svc.CreatePost(ctx, "a@x.com", titled("vote"))
	id := res.InsertedID.(primitive.ObjectID)

	for i := 0; i < 3; i++ {
		if _, err := f.svc.Vote(ctx, id, models.UpVote); err != nil {
			t.Fatalf("upvote: %v", err)
		}
	}
	if _, err := f.svc.Vote(ctx, id, models.DownVote); err != nil {
		t.Fatalf("downvote: %v", err)
	}

	post, _ := f.svc.GetPost(ctx, id)
	if post.UpVote != 3 || post.DownVote != 1 {
		t.Errorf("expected 3 up and 1 down, got %d and %d", post.UpVote, post.DownVote)
	}

	if _, err := f.svc.Vote(ctx, primitive.NewObjectID(), models.UpVote); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found for unknown post, got %v", err)
	}
}

func TestSearchByTag(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(models.User{Email: "a@x.com", Membership: true})
	for _, tag := range []string{"JavaScript", "Go", "javascript-tips"} {
		f.svc.CreatePost(ctx, "a@x.com", models.Post{Tag: tag, Fields: models.Document{"title": tag}})
	}

	posts, err := f.svc.SearchByTag(ctx, "JAVASCRIPT")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("expected 2 matches, got %d", len(posts))
	}

	if _, err := f.svc.SearchByTag(ctx, "rust"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found for unmatched tag, got %v", err)
	}
	if _, err := f.svc.SearchByTag(ctx, " "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected invalid input for empty tag, got %v", err)
	}
}

func TestRecentUserPosts(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(models.User{Email: "a@x.com", Membership: true})
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.svc.CreatePost(ctx, "a@x.com", models.Post{Fields: models.Document{"title": fmt.Sprint(i)}, Date: base.Add(time.Duration(i) * time.Hour)})
	}

	posts, err := f.svc.RecentUserPosts(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, want := range []string{"4", "3", "2"} {
		if posts[i].Field("title") != want {
			t.Errorf("position %d: expected %s, got %v", i, want, posts[i].Field("title"))
		}
	}
}

func TestDeletePostPermissions(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(
		models.User{Email: "a@x.com"},
		models.User{Email: "b@x.com"},
		models.User{Email: "admin@x.com", Role: models.RoleAdmin},
	)

	create := func() primitive.ObjectID {
		res, err := f.svc.CreatePost(ctx, "a@x.com", titled("mine"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return res.InsertedID.(primitive.ObjectID)
	}

	id := create()
	if _, err := f.svc.DeletePost(ctx, "b@x.com", id); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}
	if res, err := f.svc.DeletePost(ctx, "a@x.com", id); err != nil || res.DeletedCount != 1 {
		t.Fatalf("owner delete: %+v %v", res, err)
	}
	if _, err := f.svc.GetPost(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted post to be gone, got %v", err)
	}

	id = create()
	if _, err := f.svc.DeletePost(ctx, "admin@x.com", id); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

func TestPostUsageAndRecount(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(models.User{Email: "a@x.com"})
	res, _ := f.svc.CreatePost(ctx, "a@x.com", titled("counted"))
	id := res.InsertedID.(primitive.ObjectID)

	usage, err := f.svc.PostUsage(ctx, "a@x.com")
	if err != nil || usage.PostCount != 1 || usage.Membership {
		t.Fatalf("unexpected usage %+v %v", usage, err)
	}
	if usage, _ := f.svc.PostUsage(ctx, "ghost@x.com"); usage != (models.PostUsage{}) {
		t.Errorf("unknown user should have empty usage, got %+v", usage)
	}

	for i := 0; i < 2; i++ {
		f.comments.Insert(ctx, &models.Comment{PostID: id, CommentText: "hi"})
	}
	if _, err := f.svc.RecountComments(ctx, id); err != nil {
		t.Fatalf("recount: %v", err)
	}
	post, _ := f.svc.GetPost(ctx, id)
	if post.PostCount != 2 {
		t.Errorf("expected postCount 2, got %d", post.PostCount)
	}
	if _, err := f.svc.RecountComments(ctx, primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
