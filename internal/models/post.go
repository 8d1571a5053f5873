package models

import (
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post keeps typed only the fields the server reads or writes. Title, body,
// images and anything else the client sends are stored as-is in Fields.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Tag       string             `bson:"tag" json:"tag"`
	Date      time.Time          `bson:"date" json:"date"`
	UpVote    int64              `bson:"upVote" json:"upVote"`
	DownVote  int64              `bson:"downVote" json:"downVote"`
	PostCount int64              `bson:"postCount" json:"postCount"`
	Fields    Document           `bson:",inline" json:"-"`
}

var postKeys = map[string]bool{
	"_id": true, "userEmail": true, "tag": true, "date": true,
	"upVote": true, "downVote": true, "postCount": true,
}

// SetFields replaces the free-form fields, dropping keys that belong to the
// typed ones.
func (p *Post) SetFields(fields Document) {
	p.Fields = nil
	for k, v := range fields {
		if postKeys[k] {
			continue
		}
		if p.Fields == nil {
			p.Fields = Document{}
		}
		p.Fields[k] = v
	}
}

// Field returns one free-form field, nil when absent.
func (p Post) Field(key string) interface{} {
	return p.Fields[key]
}

type postJSON Post

func (p Post) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Fields)+len(postKeys))
	for k, v := range p.Fields {
		out[k] = v
	}
	if !p.ID.IsZero() {
		out["_id"] = p.ID
	}
	out["userEmail"] = p.UserEmail
	out["tag"] = p.Tag
	out["date"] = p.Date
	out["upVote"] = p.UpVote
	out["downVote"] = p.DownVote
	out["postCount"] = p.PostCount
	return json.Marshal(out)
}

func (p *Post) UnmarshalJSON(data []byte) error {
	var typed postJSON
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	var fields Document
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = Post(typed)
	p.SetFields(fields)
	return nil
}

// Vote selects one of the two independent counters of a post.
type Vote string

const (
	UpVote   Vote = "upVote"
	DownVote Vote = "downVote"
)
