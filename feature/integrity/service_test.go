package integrity

import (
	"context"
	"io"
	"strings"
	"testing"

	"token-bridge/core/database"
	"token-bridge/core/storage/mocks"
	"token-bridge/feature/snapshots"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func emptyChan() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func setupSQLite(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	if migrate {
		require.NoError(t, snapshots.NewRepository(db).Migrate())
	}
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", "tokens/", nil, zap.NewNop())
	assert.Equal(t, []string{"tokens/"}, svc.Folders())

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyChan())

		missing, err := svc.CheckStructure(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"tokens/"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "tokens/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		assert.NoError(t, svc.FixStructure(context.Background(), []string{"tokens/"}))
	})
}

func TestService_Documents(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", "tokens/", nil, zap.NewNop())

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "tokens/brand.json"}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("GetObject", mock.Anything, "test-bucket", "tokens/brand.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"colors": {"primary": {"$type": "color", "$value": "#fff"}}}`)), nil)

	report, err := svc.CheckDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 0, report.Invalid)
}

func TestService_Schema(t *testing.T) {
	t.Run("No Database", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "test-bucket", "tokens/", nil, zap.NewNop())
		_, err := svc.CheckSchema()
		assert.ErrorIs(t, err, ErrNoDatabase)
	})

	t.Run("Migrated", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "test-bucket", "tokens/", setupSQLite(t, true), zap.NewNop())
		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.True(t, report.Matched, "%+v", report.Tables)
		assert.Contains(t, report.Tables, "variable_snapshots")
	})

	t.Run("Not Migrated", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "test-bucket", "tokens/", setupSQLite(t, false), zap.NewNop())
		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Contains(t, report.Tables["variable_snapshots"].MissingColumns, "checksum")
	})
}
