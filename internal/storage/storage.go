package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	config "github.com/ukozhakova/Django2021-Endterm/configs"
)

// Storage persists an uploaded image and returns the URL or path to store in
// the row.
type Storage interface {
	Save(ctx context.Context, entity, filename string, file io.Reader) (string, error)
}

// FromEnv picks Cloudinary when CLOUDINARY_URL is configured and falls back
// to local disk otherwise.
func FromEnv() Storage {
	cfg := config.LoadCloudinaryConfig()
	if cfg.URL != "" {
		if cld, err := cloudinary.NewFromURL(cfg.URL); err == nil {
			return &Cloudinary{cld: cld, folder: cfg.Folder}
		}
	}
	return &Disk{Dir: "media"}
}

type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func (s *Cloudinary) Save(ctx context.Context, entity, filename string, file io.Reader) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: fmt.Sprintf("%s/%s", s.folder, entity),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return result.SecureURL, nil
}

// Disk writes uploads under Dir/<entity>/, keyed by entity the same way the
// hosted backend keys folders.
type Disk struct {
	Dir string
}

func (s *Disk) Save(_ context.Context, entity, filename string, file io.Reader) (string, error) {
	dir := filepath.Join(s.Dir, entity)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filepath.Base(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return path, nil
}
