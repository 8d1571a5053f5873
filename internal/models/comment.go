package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PostID      primitive.ObjectID `bson:"postId" json:"postId"`
	Email       string             `bson:"email" json:"email"`
	CommentText string             `bson:"commentText" json:"commentText"`
	Feedback    string             `bson:"feedback" json:"feedback"`
	Reported    bool               `bson:"reported" json:"reported"`
	Date        time.Time          `bson:"date" json:"date"`
}
