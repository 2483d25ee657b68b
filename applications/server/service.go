package server

import (
	"context"

	"github.com/donmikel/imagebox/applications/server/domain"
)

// ImageService decodes legacy binary strings into image files and moves file
// bundles to and from the configured store.
type ImageService interface {
	CreateImageFromBinaryString(ctx context.Context, encoded string) (domain.File, error)
	DownloadFile(ctx context.Context, file *domain.File) error
	GetFile(ctx context.Context, name string) (domain.File, error)
}
