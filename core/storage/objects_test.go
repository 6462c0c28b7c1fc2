package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"token-bridge/core/storage"
	"token-bridge/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "tokens/core.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"colors":{"primary":{"$value":"#fff"}}}`)), nil)

		var doc map[string]any
		require.NoError(t, storage.ReadJSON(ctx, client, "bucket", "tokens/core.json", &doc))
		assert.Contains(t, doc, "colors")
		client.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "tokens/missing.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

		var doc map[string]any
		err := storage.ReadJSON(ctx, client, "bucket", "tokens/missing.json", &doc)
		assert.True(t, errors.Is(err, storage.ErrObjectNotFound))
	})

	t.Run("OtherError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "x.json", mock.Anything).Return(nil, assert.AnError)

		var doc map[string]any
		err := storage.ReadJSON(ctx, client, "bucket", "x.json", &doc)
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, errors.Is(err, storage.ErrObjectNotFound))
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "bucket", "x.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{`)), nil)

		var doc map[string]any
		assert.Error(t, storage.ReadJSON(ctx, client, "bucket", "x.json", &doc))
	})
}

func TestWriteJSON(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)

	var uploaded string
	client.On("PutObject", mock.Anything, "bucket", "exports/brand.json", mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).Run(func(args mock.Arguments) {
		data, _ := io.ReadAll(args.Get(3).(io.Reader))
		uploaded = string(data)
	}).Return(minio.UploadInfo{}, nil)

	require.NoError(t, storage.WriteJSON(ctx, client, "bucket", "exports/brand.json", map[string]string{"seed": "#6366f1"}))
	assert.JSONEq(t, `{"seed":"#6366f1"}`, uploaded)
	client.AssertExpectations(t)

	t.Run("UploadError", func(t *testing.T) {
		failing := new(mocks.Client)
		failing.On("PutObject", mock.Anything, "bucket", "x.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, assert.AnError)
		assert.ErrorIs(t, storage.WriteJSON(ctx, failing, "bucket", "x.json", 1), assert.AnError)
	})
}

func TestListNames(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)

	ch := make(chan minio.ObjectInfo, 4)
	ch <- minio.ObjectInfo{Key: "tokens/"}
	ch <- minio.ObjectInfo{Key: "tokens/marketing.yaml"}
	ch <- minio.ObjectInfo{Key: "tokens/core.json"}
	close(ch)
	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	names, err := storage.ListNames(ctx, client, "bucket", "tokens/")
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "marketing"}, names)

	t.Run("ListError", func(t *testing.T) {
		failing := new(mocks.Client)
		errCh := make(chan minio.ObjectInfo, 1)
		errCh <- minio.ObjectInfo{Err: assert.AnError}
		close(errCh)
		failing.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(errCh))

		_, err := storage.ListNames(ctx, failing, "bucket", "tokens/")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
