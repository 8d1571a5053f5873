// Package repotest provides in-memory repositories with the same semantics as
// the MongoDB ones, for tests that exercise services and handlers end to end.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Users struct {
	mu    sync.Mutex
	users []models.User
}

func NewUsers(seed ...models.User) *Users {
	u := &Users{}
	for _, user := range seed {
		user := user
		u.Insert(context.Background(), &user)
	}
	return u
}

func (u *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (u *Users) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	u.users = append(u.users, *user)
	return user.ID, nil
}

func (u *Users) List(_ context.Context) ([]models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.User{}, u.users...), nil
}

func (u *Users) SetRole(_ context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	return u.update(func(user *models.User) bool { return user.ID == id }, func(user *models.User) bool {
		changed := user.Role != role
		user.Role = role
		return changed
	})
}

func (u *Users) GrantMembership(_ context.Context, email, badge, status string) (models.UpdateResult, error) {
	return u.update(func(user *models.User) bool { return user.Email == email }, func(user *models.User) bool {
		changed := !user.Membership || user.Badge != badge || user.Status != status
		user.Membership, user.Badge, user.Status = true, badge, status
		return changed
	})
}

func (u *Users) Count(_ context.Context) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return int64(len(u.users)), nil
}

func (u *Users) update(match func(*models.User) bool, apply func(*models.User) bool) (models.UpdateResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	for i := range u.users {
		if match(&u.users[i]) {
			res.MatchedCount = 1
			if apply(&u.users[i]) {
				res.ModifiedCount = 1
			}
			break
		}
	}
	return res, nil
}

type Posts struct {
	mu    sync.Mutex
	posts []models.Post
}

func NewPosts() *Posts {
	return &Posts{}
}

func (p *Posts) Insert(_ context.Context, post *models.Post) (primitive.ObjectID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	stored := *post
	stored.SetFields(post.Fields)
	p.posts = append(p.posts, stored)
	return post.ID, nil
}

func (p *Posts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.index(id); i >= 0 {
		found := p.posts[i]
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

func (p *Posts) ListRecent(_ context.Context) ([]models.Post, error) {
	return p.filter(func(models.Post) bool { return true }, 0), nil
}

func (p *Posts) ListByOwner(_ context.Context, email string, limit int64) ([]models.Post, error) {
	return p.filter(func(post models.Post) bool { return post.UserEmail == email }, limit), nil
}

func (p *Posts) SearchByTag(_ context.Context, tag string) ([]models.Post, error) {
	tag = strings.ToLower(tag)
	return p.filter(func(post models.Post) bool {
		return strings.Contains(strings.ToLower(post.Tag), tag)
	}, 0), nil
}

func (p *Posts) CountByOwner(ctx context.Context, email string) (int64, error) {
	posts, _ := p.ListByOwner(ctx, email, 0)
	return int64(len(posts)), nil
}

func (p *Posts) Count(_ context.Context) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int64(len(p.posts)), nil
}

func (p *Posts) Delete(_ context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := models.DeleteResult{Acknowledged: true}
	if i := p.index(id); i >= 0 {
		p.posts = append(p.posts[:i], p.posts[i+1:]...)
		res.DeletedCount = 1
	}
	return res, nil
}

func (p *Posts) Increment(_ context.Context, id primitive.ObjectID, vote models.Vote) (models.UpdateResult, error) {
	return p.update(id, func(post *models.Post) {
		switch vote {
		case models.UpVote:
			post.UpVote++
		case models.DownVote:
			post.DownVote++
		}
	}), nil
}

func (p *Posts) SetCommentCount(_ context.Context, id primitive.ObjectID, count int64) (models.UpdateResult, error) {
	res := p.update(id, func(post *models.Post) { post.PostCount = count })
	return res, nil
}

func (p *Posts) update(id primitive.ObjectID, apply func(*models.Post)) models.UpdateResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	if i := p.index(id); i >= 0 {
		counters := func(post models.Post) [3]int64 { return [3]int64{post.UpVote, post.DownVote, post.PostCount} }
		before := counters(p.posts[i])
		apply(&p.posts[i])
		res.MatchedCount = 1
		if before != counters(p.posts[i]) {
			res.ModifiedCount = 1
		}
	}
	return res
}

func (p *Posts) index(id primitive.ObjectID) int {
	for i, post := range p.posts {
		if post.ID == id {
			return i
		}
	}
	return -1
}

// filter returns matching posts newest first, at most limit of them when
// limit is positive.
func (p *Posts) filter(keep func(models.Post) bool, limit int64) []models.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []models.Post{}
	for _, post := range p.posts {
		if keep(post) {
			out = append(out, post)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

type Comments struct {
	mu       sync.Mutex
	comments []models.Comment
}

func NewComments() *Comments {
	return &Comments{}
}

func (c *Comments) Insert(_ context.Context, comment *models.Comment) (primitive.ObjectID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	c.comments = append(c.comments, *comment)
	return comment.ID, nil
}

func (c *Comments) FindByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, comment := range c.comments {
		if comment.ID == id {
			found := comment
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (c *Comments) ListByPost(_ context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []models.Comment{}
	for _, comment := range c.comments {
		if comment.PostID == postID {
			out = append(out, comment)
		}
	}
	return out, nil
}

func (c *Comments) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	comments, _ := c.ListByPost(ctx, postID)
	return int64(len(comments)), nil
}

func (c *Comments) Count(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.comments)), nil
}

func (c *Comments) Delete(_ context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := models.DeleteResult{Acknowledged: true}
	for i, comment := range c.comments {
		if comment.ID == id {
			c.comments = append(c.comments[:i], c.comments[i+1:]...)
			res.DeletedCount = 1
			break
		}
	}
	return res, nil
}

func (c *Comments) Report(_ context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	for i := range c.comments {
		if c.comments[i].ID == id {
			res.MatchedCount = 1
			if !c.comments[i].Reported || c.comments[i].Feedback != feedback {
				res.ModifiedCount = 1
			}
			c.comments[i].Reported = true
			c.comments[i].Feedback = feedback
			break
		}
	}
	return res, nil
}

type Documents struct {
	mu   sync.Mutex
	docs []models.Document
}

func NewDocuments() *Documents {
	return &Documents{}
}

func (d *Documents) Insert(_ context.Context, doc models.Document) (primitive.ObjectID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := primitive.NewObjectID()
	stored := models.Document{}
	for k, v := range doc {
		stored[k] = v
	}
	stored["_id"] = id
	d.docs = append(d.docs, stored)
	return id, nil
}

func (d *Documents) List(_ context.Context) ([]models.Document, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.Document{}, d.docs...), nil
}
