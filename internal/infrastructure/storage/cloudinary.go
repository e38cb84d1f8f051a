package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Config holds the asset store credentials.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// UploadResult describes a stored asset.
type UploadResult struct {
	URL      string
	PublicID string
	Bytes    int64
	Format   string
}

// CloudinaryStore uploads and deletes binary assets in Cloudinary.
// Only asset metadata is kept locally; the binary never touches our
// database.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore creates an asset store
func NewCloudinaryStore(cfg Config) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}
	folder := cfg.Folder
	if folder == "" {
		folder = "sahaaya"
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

// Upload stores the file and returns its metadata.
func (s *CloudinaryStore) Upload(ctx context.Context, file multipart.File) (*UploadResult, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := s.cld.Upload.Upload(uploadCtx, file, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("upload error: %w", err)
	}

	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Bytes:    int64(resp.Bytes),
		Format:   resp.Format,
	}, nil
}

// Delete removes an asset by its public id.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	deleteCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.cld.Upload.Destroy(deleteCtx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	return nil
}

// ExtractPublicID recovers the public id from a full asset URL, e.g.
// https://res.cloudinary.com/demo/image/upload/v123/sahaaya/abc.jpg
// yields "sahaaya/abc".
func ExtractPublicID(assetURL string) (string, error) {
	parsed, err := url.Parse(assetURL)
	if err != nil {
		return "", err
	}

	parts := strings.Split(parsed.Path, "/")
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx+1 >= len(parts) {
		return "", fmt.Errorf("invalid asset URL format")
	}

	rest := parts[uploadIdx+1:]
	// Drop the version segment if present.
	if len(rest) > 1 && strings.HasPrefix(rest[0], "v") {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", fmt.Errorf("invalid asset URL format")
	}

	joined := path.Join(rest...)
	return strings.TrimSuffix(joined, path.Ext(joined)), nil
}
