package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names of the forum database.
const (
	UsersCollection         = "users"
	PostsCollection         = "posts"
	CommentsCollection      = "comments"
	AnnouncementsCollection = "announcements"
	TagsCollection          = "tags"
	WarningsCollection      = "warnings"
	PaymentsCollection      = "successedPayment"
)

const connectTimeout = 10 * time.Second

// ConnectMongoDB opens the long-lived client shared by every repository and
// verifies it with a ping. The caller owns the client and must Disconnect it.
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		// Free-form post fields decode as maps so they serialize back as sent.
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the lookup indexes the handlers rely on. Email is
// indexed but not unique: uniqueness is enforced by the registration check.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		PostsCollection: {
			{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		CommentsCollection: {
			{Keys: bson.D{{Key: "postId", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// Collection wraps a named collection of the database for repositories.
func Collection(database *mongo.Database, name string) CollectionHelper {
	return &MongoCollection{Collection: database.Collection(name)}
}
