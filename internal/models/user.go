package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Membership bool               `bson:"membership,omitempty" json:"membership"`
	Badge      string             `bson:"badge,omitempty" json:"badge,omitempty"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// PostUsage is the membership flag and post count of one user.
type PostUsage struct {
	Membership bool  `json:"membership"`
	PostCount  int64 `json:"postCount"`
}
