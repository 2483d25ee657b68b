package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/donmikel/imagebox/applications/server/domain"
	"github.com/donmikel/imagebox/applications/server/interfaces"
)

type inMemoryFileStore struct {
	fileByName map[string]domain.File
	log        log.Logger
	mutex      sync.RWMutex
}

func NewFileStore(logger log.Logger) interfaces.FileStore {
	return &inMemoryFileStore{
		fileByName: map[string]domain.File{},
		log:        logger,
	}
}

func (m *inMemoryFileStore) Save(ctx context.Context, file domain.File) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.fileByName[file.Name] = file

	level.Info(m.log).Log("msg", "file saved",
		"path", file.Name,
	)

	return file.Name, nil
}

func (m *inMemoryFileStore) Read(ctx context.Context, name string) (domain.File, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	file, ok := m.fileByName[name]
	if !ok {
		return domain.File{}, fmt.Errorf("file with name = %s not found", name)
	}

	return file, nil
}
