package entities

import (
	"time"

	"github.com/google/uuid"
)

// FileAsset is metadata for an externally stored upload. The binary lives
// in the asset store; only its metadata is persisted here.
type FileAsset struct {
	ID         uuid.UUID  `json:"id"`
	URL        string     `json:"url"`
	PublicID   string     `json:"publicId"`
	Bytes      int64      `json:"bytes"`
	Format     string     `json:"format"`
	Folder     string     `json:"folder"`
	UploadedBy uuid.UUID  `json:"uploadedBy"`
	CreatedAt  time.Time  `json:"createdAt"`
	DeletedAt  *time.Time `json:"-"`
}
