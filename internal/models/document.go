package models

// Document is a free-form record of the announcements, tags, warnings and
// payment collections. Only "_id" is assigned by the server.
type Document map[string]interface{}

// Stats is the site-wide count summary.
type Stats struct {
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
	Users    int64 `json:"users"`
}
