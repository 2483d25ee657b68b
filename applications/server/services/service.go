package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/donmikel/imagebox/applications/server"
	"github.com/donmikel/imagebox/applications/server/binstr"
	"github.com/donmikel/imagebox/applications/server/domain"
	"github.com/donmikel/imagebox/applications/server/interfaces"
)

// ErrNoFile is returned when DownloadFile is called without a file. The
// condition is logged and nothing is written.
var ErrNoFile = errors.New("no file to download")

const imageExt = ".png"

type service struct {
	store interfaces.FileStore
	log   log.Logger

	mutex      sync.Mutex
	lastMillis int64
}

func NewService(store interfaces.FileStore, logger log.Logger) server.ImageService {
	return &service{
		store: store,
		log:   logger,
	}
}

func (s *service) CreateImageFromBinaryString(ctx context.Context, encoded string) (domain.File, error) {
	content, err := binstr.Decode(encoded)
	if err != nil {
		return domain.File{}, fmt.Errorf("can't decode binary string: %w", err)
	}

	return domain.File{
		Name:     s.nextName(),
		MIMEType: domain.MIMETypePNG,
		Content:  content,
	}, nil
}

func (s *service) DownloadFile(ctx context.Context, file *domain.File) error {
	if file == nil {
		level.Error(s.log).Log("msg", "no file to download")
		return ErrNoFile
	}

	if _, err := s.store.Save(ctx, *file); err != nil {
		return fmt.Errorf("can't save file: %w", err)
	}

	return nil
}

func (s *service) GetFile(ctx context.Context, name string) (domain.File, error) {
	file, err := s.store.Read(ctx, name)
	if err != nil {
		return domain.File{}, fmt.Errorf("can't read file: %w", err)
	}

	return file, nil
}

// nextName derives the file name from the current timestamp in milliseconds.
// The millis value is bumped when two calls land in the same instant, so
// names stay unique within the process.
func (s *service) nextName() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastMillis {
		now = s.lastMillis + 1
	}
	s.lastMillis = now

	return strconv.FormatInt(now, 10) + imageExt
}
