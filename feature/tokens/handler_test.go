package tokens

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"token-bridge/core/gitrepo"
	"token-bridge/core/storage/mocks"
	"token-bridge/core/tokens"

	"github.com/gofiber/fiber/v2"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleDocument = `{
	"colors": {
		"primary": {
			"500": {"$type": "color", "$value": "#6366f1", "$description": "Brand"},
			"600": {"$type": "color", "$value": "#4f46e5"}
		}
	},
	"spacing": {
		"md": {"$type": "dimension", "$value": {"value": 8, "unit": "px"}}
	},
	"metadata": {"version": 2}
}`

var notFound = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}

func setupTestApp(t *testing.T, repo *gitrepo.Repository) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	feature := NewFeature(mockClient, "test-bucket", "tokens/", repo, gitrepo.Config{Ref: "HEAD", TokensPath: "design/tokens.json"}, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, mockClient
}

func decodeFlattened(t *testing.T, body io.Reader) Flattened {
	t.Helper()
	var out Flattened
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHandleFlatten(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	t.Run("JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/tokens/flatten", strings.NewReader(sampleDocument))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		out := decodeFlattened(t, resp.Body)
		require.Len(t, out.Tokens, 3)
		assert.Equal(t, "colors.primary.500", out.Tokens[0].Path)
		assert.Equal(t, "Brand", out.Tokens[0].Description)
		assert.Equal(t, "spacing.md", out.Tokens[2].Path)
		assert.Equal(t, 3, out.Summary.Total)
		assert.Equal(t, 2, out.Summary.ByKind[tokens.KindColor])
		assert.Equal(t, []string{"colors.primary", "spacing"}, out.Summary.Groups)
		assert.Nil(t, out.Groups)
	})

	t.Run("YAML", func(t *testing.T) {
		body := "radius:\n  sm:\n    $type: dimension\n    $value: 4px\n"
		resp, err := app.Test(httptest.NewRequest("POST", "/tokens/flatten", strings.NewReader(body)))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		out := decodeFlattened(t, resp.Body)
		require.Len(t, out.Tokens, 1)
		assert.Equal(t, "4px", out.Tokens[0].Value)
	})

	t.Run("KindFilterAndGrouping", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/tokens/flatten?kind=color&grouped=true", strings.NewReader(sampleDocument))
		resp, err := app.Test(req)
		require.NoError(t, err)

		out := decodeFlattened(t, resp.Body)
		assert.Len(t, out.Tokens, 2)
		assert.Equal(t, 2, out.Summary.Total)
		require.Contains(t, out.Groups, "colors.primary")
		assert.Len(t, out.Groups["colors.primary"], 2)
	})

	t.Run("Empty", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/tokens/flatten", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		out := decodeFlattened(t, resp.Body)
		assert.Empty(t, out.Tokens)
		assert.Equal(t, 0, out.Summary.Total)
	})

	t.Run("Invalid", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/tokens/flatten", strings.NewReader(`{"colors": `)))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleGet(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		app, mockClient := setupTestApp(t, nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "tokens/core.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(sampleDocument)), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/tokens/core", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		out := decodeFlattened(t, resp.Body)
		assert.Equal(t, "tokens/core.json", out.Source)
		assert.Len(t, out.Tokens, 3)
	})

	t.Run("FallsBackToYAML", func(t *testing.T) {
		app, mockClient := setupTestApp(t, nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "tokens/brand.json", mock.Anything).Return(nil, notFound)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "tokens/brand.yaml", mock.Anything).
			Return(io.NopCloser(strings.NewReader("a:\n  $type: color\n  $value: '#000000'\n")), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/tokens/brand", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		out := decodeFlattened(t, resp.Body)
		assert.Equal(t, "tokens/brand.yaml", out.Source)
		require.Len(t, out.Tokens, 1)
		assert.Equal(t, "(root)", out.Tokens[0].Group)
	})

	t.Run("NotFound", func(t *testing.T) {
		app, mockClient := setupTestApp(t, nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(nil, notFound)

		resp, err := app.Test(httptest.NewRequest("GET", "/tokens/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		mockClient.AssertNumberOfCalls(t, "GetObject", 3)
	})

	t.Run("InvalidStoredDocument", func(t *testing.T) {
		app, mockClient := setupTestApp(t, nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "tokens/broken.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"a": [`)), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/tokens/broken", nil))
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)
	})

	t.Run("StorageError", func(t *testing.T) {
		app, mockClient := setupTestApp(t, nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "tokens/core.json", mock.Anything).Return(nil, assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", "/tokens/core", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleList(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "tokens/core.json"}
	ch <- minio.ObjectInfo{Key: "tokens/brand.yaml"}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/tokens", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"brand", "core"}, body["documents"])
}

func setupRepo(t *testing.T) (*gitrepo.Repository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	full := filepath.Join(dir, "design", "tokens.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(sampleDocument), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("design/tokens.json")
	require.NoError(t, err)
	hash, err := worktree.Commit("Add tokens", &git.CommitOptions{
		Author: &object.Signature{Name: "Design Ops", Email: "design@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	r, err := gitrepo.Open(dir)
	require.NoError(t, err)
	return r, hash.String()
}

func TestHandleRepo(t *testing.T) {
	repo, hash := setupRepo(t)
	app, _ := setupTestApp(t, repo)

	t.Run("Defaults", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/tokens/repo", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		out := decodeFlattened(t, resp.Body)
		assert.Equal(t, "design/tokens.json", out.Source)
		require.NotNil(t, out.Revision)
		assert.Equal(t, hash, out.Revision.Hash)
		assert.Len(t, out.Tokens, 3)
	})

	t.Run("UnknownRef", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/tokens/repo?ref=nope", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("MissingPath", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/tokens/repo?path=missing.json", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Disabled", func(t *testing.T) {
		disabled, _ := setupTestApp(t, nil)
		resp, err := disabled.Test(httptest.NewRequest("GET", "/tokens/repo", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})
}

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), "test-bucket", "tokens/", nil, gitrepo.Config{}, zap.NewNop())

	assert.Equal(t, "tokens", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.NoError(t, feature.Load(fiber.New()))
}
