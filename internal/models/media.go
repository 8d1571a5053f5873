package models

import (
	"time"
)

// Media describes an uploaded image and its thumbnail in object storage.
type Media struct {
	Filename     string    `json:"filename"`
	ContentType  string    `json:"contentType"`
	Owner        string    `json:"owner"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	CreatedAt    time.Time `json:"createdAt"`
}
