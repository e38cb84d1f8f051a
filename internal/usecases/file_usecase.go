package usecases

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
	"sahaaya.backend/pkg/logger"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// FileUsecase handles binary uploads and their metadata
type FileUsecase struct {
	fileRepo repositories.FileRepository
	assets   AssetStore
}

// NewFileUsecase creates a new file usecase
func NewFileUsecase(fileRepo repositories.FileRepository, assets AssetStore) *FileUsecase {
	return &FileUsecase{
		fileRepo: fileRepo,
		assets:   assets,
	}
}

// Upload pushes the binary to the asset store and persists its metadata.
func (u *FileUsecase) Upload(ctx context.Context, uploaderID uuid.UUID, header *multipart.FileHeader) (*entities.FileAsset, error) {
	if header.Size > maxUploadBytes {
		return nil, domainerrors.BadRequest("file exceeds the 10 MiB upload limit")
	}

	file, err := header.Open()
	if err != nil {
		return nil, domainerrors.BadRequest("unreadable upload")
	}
	defer file.Close()

	result, err := u.assets.Upload(ctx, file)
	if err != nil {
		return nil, domainerrors.BadGateway("asset store unavailable", err)
	}

	asset := &entities.FileAsset{
		URL:        result.URL,
		PublicID:   result.PublicID,
		Bytes:      result.Bytes,
		Format:     result.Format,
		UploadedBy: uploaderID,
	}
	if err := u.fileRepo.Create(ctx, asset); err != nil {
		// The binary is already stored; reap it so nothing orphans.
		if delErr := u.assets.Delete(ctx, result.PublicID); delErr != nil {
			logger.Error(ctx, "failed to reap orphaned asset",
				zap.String("public_id", result.PublicID), zap.Error(delErr))
		}
		return nil, err
	}
	return asset, nil
}

// GetByID returns one asset's metadata
func (u *FileUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.FileAsset, error) {
	return u.fileRepo.GetByID(ctx, id)
}

// List returns uploaded assets, newest first
func (u *FileUsecase) List(ctx context.Context, limit, offset int) ([]*entities.FileAsset, int, error) {
	return u.fileRepo.List(ctx, limit, offset)
}

// Delete removes the binary from the asset store, then the metadata.
func (u *FileUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	asset, err := u.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.assets.Delete(ctx, asset.PublicID); err != nil {
		return domainerrors.BadGateway("asset store unavailable", err)
	}
	return u.fileRepo.Delete(ctx, id)
}
