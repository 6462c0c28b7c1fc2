package checks

import (
	"context"
	"io"
	"strings"
	"testing"

	"token-bridge/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestCheckDocuments(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "tokens", withPrefix("tokens/")).
		Return(objectChan("tokens/", "tokens/web.yaml", "tokens/brand.json", "tokens/broken.json"))

	mockClient.On("GetObject", mock.Anything, "tokens", "tokens/brand.json", mock.Anything).
		Return(body(`{"colors": {"primary": {"$type": "color", "$value": "#6366f1"}, "glow": {"$type": "gradient", "$value": "x"}}}`), nil)
	mockClient.On("GetObject", mock.Anything, "tokens", "tokens/web.yaml", mock.Anything).
		Return(body("spacing:\n  md:\n    $type: dimension\n    $value: 16px\n"), nil)
	mockClient.On("GetObject", mock.Anything, "tokens", "tokens/broken.json", mock.Anything).
		Return(body(`{"colors": `), nil)

	report, err := CheckDocuments(context.Background(), mockClient, "tokens", "tokens/")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Checked)
	assert.Equal(t, 1, report.Invalid)
	require.Len(t, report.Documents, 3)

	brand := report.Documents[0]
	assert.Equal(t, "tokens/brand.json", brand.Object)
	assert.Equal(t, 2, brand.Tokens)
	assert.Equal(t, []string{"gradient"}, brand.UnknownKinds)

	broken := report.Documents[1]
	assert.Equal(t, "tokens/broken.json", broken.Object)
	assert.Contains(t, broken.Error, "invalid token document")

	web := report.Documents[2]
	assert.Equal(t, 1, web.Tokens)
	assert.Empty(t, web.Error)
}

func TestCheckDocuments_ListError(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "tokens", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := CheckDocuments(context.Background(), mockClient, "tokens", "tokens/")
	assert.ErrorIs(t, err, assert.AnError)
}
