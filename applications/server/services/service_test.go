package services

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donmikel/imagebox/applications/server/adapters/inmemory"
	"github.com/donmikel/imagebox/applications/server/binstr"
	"github.com/donmikel/imagebox/applications/server/domain"
)

var imageNameRe = regexp.MustCompile(`^\d+\.png$`)

func TestCreateImageFromBinaryString(t *testing.T) {
	svc := NewService(inmemory.NewFileStore(log.NewNopLogger()), log.NewNopLogger())
	ctx := context.Background()

	file, err := svc.CreateImageFromBinaryString(ctx, "Hello, world!")
	require.NoError(t, err)

	assert.Equal(t, "image/png", file.MIMEType)
	assert.Equal(t, []byte("Hello, world!"), file.Content)
	assert.Regexp(t, imageNameRe, file.Name)
}

func TestCreateImageFromBinaryStringEmpty(t *testing.T) {
	svc := NewService(inmemory.NewFileStore(log.NewNopLogger()), log.NewNopLogger())

	file, err := svc.CreateImageFromBinaryString(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "image/png", file.MIMEType)
	assert.Equal(t, int64(0), file.Size())
	assert.Regexp(t, imageNameRe, file.Name)
}

func TestCreateImageFromBinaryStringInvalid(t *testing.T) {
	svc := NewService(inmemory.NewFileStore(log.NewNopLogger()), log.NewNopLogger())

	_, err := svc.CreateImageFromBinaryString(context.Background(), "okĀ")
	assert.Error(t, err)
}

func TestCreateImageRoundTrip(t *testing.T) {
	svc := NewService(inmemory.NewFileStore(log.NewNopLogger()), log.NewNopLogger())

	encoded := binstr.Encode([]byte{0x89, 'P', 'N', 'G', 0x00, 0xff})
	file, err := svc.CreateImageFromBinaryString(context.Background(), encoded)
	require.NoError(t, err)

	assert.Equal(t, encoded, binstr.Encode(file.Content))
}

func TestNamesAreUniqueWithinTheSameMillisecond(t *testing.T) {
	svc := NewService(inmemory.NewFileStore(log.NewNopLogger()), log.NewNopLogger())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		file, err := svc.CreateImageFromBinaryString(ctx, "x")
		require.NoError(t, err)
		assert.False(t, seen[file.Name], "duplicate name %s", file.Name)
		seen[file.Name] = true
	}
}

func TestDownloadFile(t *testing.T) {
	store := inmemory.NewFileStore(log.NewNopLogger())
	svc := NewService(store, log.NewNopLogger())
	ctx := context.Background()

	file := domain.File{
		Name:     "example.txt",
		MIMEType: "text/plain",
		Content:  []byte("Hello, world!"),
	}

	err := svc.DownloadFile(ctx, &file)
	require.NoError(t, err)

	got, err := store.Read(ctx, "example.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello, world!"), got.Content)
}

func TestDownloadFileMissing(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	store := inmemory.NewFileStore(log.NewNopLogger())
	svc := NewService(store, logger)

	err := svc.DownloadFile(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFile)

	// Exactly one error line and no file written.
	logged := strings.TrimRight(buf.String(), "\n")
	assert.Equal(t, 1, len(strings.Split(logged, "\n")))
	assert.Contains(t, logged, "no file to download")

	_, err = store.Read(context.Background(), "")
	assert.Error(t, err)
}

func TestDownloadFileOverwrites(t *testing.T) {
	store := inmemory.NewFileStore(log.NewNopLogger())
	svc := NewService(store, log.NewNopLogger())
	ctx := context.Background()

	first := domain.File{Name: "same.png", Content: []byte("first")}
	second := domain.File{Name: "same.png", Content: []byte("second")}

	require.NoError(t, svc.DownloadFile(ctx, &first))
	require.NoError(t, svc.DownloadFile(ctx, &second))

	got, err := svc.GetFile(ctx, "same.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got.Content)
}
