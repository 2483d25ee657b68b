package interfaces

import (
	"context"

	"github.com/donmikel/imagebox/applications/server/domain"
)

// FileStore persists whole file bundles under their name. Save overwrites an
// existing file with the same name and returns the path the file was written
// to. Read returns the stored bundle by name.
type FileStore interface {
	Save(ctx context.Context, file domain.File) (string, error)
	Read(ctx context.Context, name string) (domain.File, error)
}
