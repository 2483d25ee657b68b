package disk

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/donmikel/imagebox/applications/server/domain"
	"github.com/donmikel/imagebox/applications/server/interfaces"
)

// ErrInvalidName is returned for file names that would escape the output
// directory when joined with it.
var ErrInvalidName = errors.New("invalid file name")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type diskStore struct {
	dir string
	log log.Logger
}

func NewFileStore(dir string, logger log.Logger) interfaces.FileStore {
	return &diskStore{
		dir: dir,
		log: logger,
	}
}

func (d *diskStore) Save(ctx context.Context, file domain.File) (string, error) {
	name, err := sanitizeName(file.Name)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(d.dir, dirPerm); err != nil {
		return "", fmt.Errorf("can't create output directory: %w", err)
	}

	path := filepath.Join(d.dir, name)
	if err = os.WriteFile(path, file.Content, filePerm); err != nil {
		return "", fmt.Errorf("can't write file: %w", err)
	}

	level.Info(d.log).Log("msg", "file saved",
		"path", path,
		"size", humanize.Bytes(uint64(len(file.Content))),
	)

	return path, nil
}

func (d *diskStore) Read(ctx context.Context, name string) (domain.File, error) {
	name, err := sanitizeName(name)
	if err != nil {
		return domain.File{}, err
	}

	path := filepath.Join(d.dir, name)
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.File{}, fmt.Errorf("can't read file: %w", err)
	}

	return domain.File{
		Name:     name,
		MIMEType: mime.TypeByExtension(filepath.Ext(name)),
		Content:  content,
	}, nil
}

// sanitizeName rejects names that are not a plain file name, so the join
// with the output directory can never write outside of it.
func sanitizeName(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return name, nil
}
