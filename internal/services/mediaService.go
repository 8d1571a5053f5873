package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/arzan03/ThreadHive/internal/models"
	"github.com/arzan03/ThreadHive/internal/utils"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	thumbnailSize = 320
	// maxImagePixels is checked from the header before any pixel is decoded.
	maxImagePixels = 40_000_000
)

// ObjectStore keeps uploaded files and serves them by public URL.
type ObjectStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) (url string, err error)
	Remove(ctx context.Context, name string) error
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
}

type MediaService struct {
	store ObjectStore
	now   func() time.Time
}

func NewMediaService(store ObjectStore) *MediaService {
	return &MediaService{store: store, now: time.Now}
}

// UploadImage stores an image and a JPEG thumbnail that fits in a
// 320x320 box. The content type is sniffed from the data, not trusted from
// the client.
func (s *MediaService) UploadImage(ctx context.Context, owner, filename string, data []byte) (*models.Media, error) {
	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, Errorf(ErrInvalidInput, "file is not a supported image")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, Errorf(ErrInvalidInput, "file is not a supported image")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, Errorf(ErrInvalidInput, "image is larger than %d megapixels", maxImagePixels/1_000_000)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, Errorf(ErrInvalidInput, "file is not a supported image")
	}

	var thumb bytes.Buffer
	if err := imaging.Encode(&thumb, imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos), imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	id := uuid.NewString()
	objects := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{"originals/" + id + ext, contentType, data},
		{"thumbs/" + id + ".jpg", "image/jpeg", thumb.Bytes()},
	}

	tasks := make([]utils.ParallelTask[string], len(objects))
	for i, o := range objects {
		o := o
		tasks[i] = func() (string, error) {
			return s.store.Put(ctx, o.name, o.contentType, o.data)
		}
	}
	urls, errs := utils.RunParallelTasks(tasks)
	if err := utils.JoinErrors(errs); err != nil {
		for i, e := range errs {
			if e == nil {
				_ = s.store.Remove(context.Background(), objects[i].name)
			}
		}
		return nil, fmt.Errorf("store media: %w", err)
	}

	bounds := img.Bounds()
	return &models.Media{
		Filename:     filename,
		ContentType:  contentType,
		Owner:        owner,
		URL:          urls[0],
		ThumbnailURL: urls[1],
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		CreatedAt:    s.now().UTC(),
	}, nil
}
