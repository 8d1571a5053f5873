package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/arzan03/ThreadHive/internal/db"
	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var testPosts = []models.Post{
	{ID: primitive.NewObjectID(), UserEmail: "a@x.com", Fields: models.Document{"title": "first"}, Tag: "JavaScript", Date: time.Now()},
	{ID: primitive.NewObjectID(), UserEmail: "a@x.com", Fields: models.Document{"title": "second"}, Tag: "Go", Date: time.Now().Add(-time.Hour)},
}

type findCase struct {
	name      string
	filter    bson.M
	opts      *options.FindOptions
	findErr   error
	cursorErr error
	f         func(ctx context.Context, r *PostRepository) ([]models.Post, error)
}

var findCases = []findCase{
	{
		name:   "ListRecent",
		filter: bson.M{},
		opts:   options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
		f: func(ctx context.Context, r *PostRepository) ([]models.Post, error) {
			return r.ListRecent(ctx)
		},
	},
	{
		name:   "ListByOwnerLimited",
		filter: bson.M{"userEmail": "a@x.com"},
		opts:   options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(3),
		f: func(ctx context.Context, r *PostRepository) ([]models.Post, error) {
			return r.ListByOwner(ctx, "a@x.com", 3)
		},
	},
	{
		name:   "ListByOwnerUnlimited",
		filter: bson.M{"userEmail": "a@x.com"},
		opts:   options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
		f: func(ctx context.Context, r *PostRepository) ([]models.Post, error) {
			return r.ListByOwner(ctx, "a@x.com", 0)
		},
	},
	{
		name:   "SearchByTagEscapesPattern",
		filter: bson.M{"tag": primitive.Regex{Pattern: `c\+\+`, Options: "i"}},
		opts:   options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
		f: func(ctx context.Context, r *PostRepository) ([]models.Post, error) {
			return r.SearchByTag(ctx, "c++")
		},
	},
	{
		name:      "CursorErrorExpected",
		filter:    bson.M{},
		opts:      options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
		cursorErr: errors.New("cursor error"),
		f: func(ctx context.Context, r *PostRepository) ([]models.Post, error) {
			return r.ListRecent(ctx)
		},
	},
}

func TestPostFind(t *testing.T) {
	for _, c := range findCases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			collection := db.NewMockCollectionHelper(ctrl)
			cursor := db.NewMockCursorHelper(ctrl)
			repo := NewPostRepository(collection)
			ctx := context.Background()

			collection.EXPECT().Find(ctx, gomock.Eq(c.filter), gomock.Eq(c.opts)).Return(cursor, nil)
			cursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&[]models.Post{})).
				SetArg(1, testPosts).Return(c.cursorErr)
			cursor.EXPECT().Close(ctx).Return(nil)

			res, err := c.f(ctx, repo)
			if c.cursorErr != nil {
				if !errors.Is(err, c.cursorErr) {
					t.Fatalf("expected error %v, got %v", c.cursorErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(res, testPosts) {
				t.Errorf("expected %v, got %v", testPosts, res)
			}
		})
	}
}

func TestPostFindError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collection := db.NewMockCollectionHelper(ctrl)
	repo := NewPostRepository(collection)
	ctx := context.Background()
	findErr := errors.New("connection reset")

	collection.EXPECT().Find(ctx, gomock.Any(), gomock.Any()).Return(nil, findErr)

	if _, err := repo.ListRecent(ctx); !errors.Is(err, findErr) {
		t.Fatalf("expected %v, got %v", findErr, err)
	}
}

func TestPostFindByID(t *testing.T) {
	cases := []struct {
		name      string
		decodeErr error
		wantErr   error
	}{
		{name: "Found"},
		{name: "Missing", decodeErr: mongo.ErrNoDocuments, wantErr: ErrNotFound},
		{name: "StoreFailure", decodeErr: errors.New("timeout"), wantErr: nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			collection := db.NewMockCollectionHelper(ctrl)
			single := db.NewMockSingleResultHelper(ctrl)
			repo := NewPostRepository(collection)
			ctx := context.Background()
			want := testPosts[0]

			collection.EXPECT().FindOne(ctx, gomock.Eq(bson.M{"_id": want.ID})).Return(single)
			single.EXPECT().Decode(gomock.AssignableToTypeOf(&models.Post{})).
				SetArg(0, want).Return(c.decodeErr)

			post, err := repo.FindByID(ctx, want.ID)
			switch {
			case c.decodeErr == nil:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !reflect.DeepEqual(*post, want) {
					t.Errorf("expected %v, got %v", want, *post)
				}
			case c.wantErr != nil:
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
			default:
				if err == nil || errors.Is(err, ErrNotFound) {
					t.Fatalf("expected store failure, got %v", err)
				}
			}
		})
	}
}

func TestPostIncrement(t *testing.T) {
	for _, vote := range []models.Vote{models.UpVote, models.DownVote} {
		t.Run(string(vote), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			collection := db.NewMockCollectionHelper(ctrl)
			result := db.NewMockUpdateResultHelper(ctrl)
			repo := NewPostRepository(collection)
			ctx := context.Background()
			id := primitive.NewObjectID()

			update := bson.D{{Key: "$inc", Value: bson.D{{Key: string(vote), Value: 1}}}}
			collection.EXPECT().UpdateOne(ctx, gomock.Eq(bson.M{"_id": id}), gomock.Eq(update)).Return(result, nil)
			result.EXPECT().GetMatchedCount().Return(int64(1))
			result.EXPECT().GetModifiedCount().Return(int64(1))

			res, err := repo.Increment(ctx, id, vote)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
			if res != want {
				t.Errorf("expected %+v, got %+v", want, res)
			}
		})
	}
}

func TestPostInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collection := db.NewMockCollectionHelper(ctrl)
	result := db.NewMockInsertOneResultHelper(ctrl)
	repo := NewPostRepository(collection)
	ctx := context.Background()
	id := primitive.NewObjectID()
	post := &models.Post{UserEmail: "a@x.com", Fields: models.Document{"title": "hello"}}

	collection.EXPECT().InsertOne(ctx, post).Return(result, nil)
	result.EXPECT().GetInsertedID().Return(id).AnyTimes()

	got, err := repo.Insert(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id || post.ID != id {
		t.Errorf("expected id %s on result and post, got %s and %s", id.Hex(), got.Hex(), post.ID.Hex())
	}
}

func TestPostCountByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collection := db.NewMockCollectionHelper(ctrl)
	repo := NewPostRepository(collection)
	ctx := context.Background()

	collection.EXPECT().CountDocuments(ctx, gomock.Eq(bson.M{"userEmail": "a@x.com"})).Return(int64(4), nil)

	n, err := repo.CountByOwner(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
}
