package checks

import (
	"testing"
	"time"

	"token-bridge/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type exportRecord struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(191)"`
	Format    string    `gorm:"column:format;type:varchar(16)"`
	Body      string    `gorm:"column:body;type:longtext"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Ignored   string    `gorm:"-"`
}

func (exportRecord) TableName() string {
	return "exports"
}

type untabled struct {
	ID uint `gorm:"column:id"`
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func showColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckSchema_MySQL(t *testing.T) {
	t.Run("Matched", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := showColumns().
			AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
			AddRow("name", "VARCHAR(191)", "YES", "", nil, "").
			AddRow("format", "varchar(16)", "YES", "", nil, "").
			AddRow("body", "longtext", "YES", "", nil, "").
			AddRow("created_at", "datetime(3)", "YES", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `exports`").WillReturnRows(rows)

		report, err := CheckSchema(db, exportRecord{})
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, "ok", report.Tables["exports"].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing And Mismatched", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := showColumns().
			AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
			AddRow("name", "int(11)", "YES", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `exports`").WillReturnRows(rows)

		report, err := CheckSchema(db, &exportRecord{})
		require.NoError(t, err)
		assert.False(t, report.Matched)

		tbl := report.Tables["exports"]
		assert.Equal(t, "error", tbl.Status)
		assert.ElementsMatch(t, []string{"format", "body", "created_at"}, tbl.MissingColumns)
		assert.Equal(t, []string{"name: expected varchar(191), got int(11)"}, tbl.TypeMismatches)
	})

	t.Run("Inspect Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `exports`").WillReturnError(assert.AnError)

		report, err := CheckSchema(db, exportRecord{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "Failed to inspect table exports")
	})
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckSchema(db, exportRecord{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Tables["exports"].MissingColumns, 5)

	require.NoError(t, db.AutoMigrate(&exportRecord{}))
	report, err = CheckSchema(db, exportRecord{})
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report.Tables)
}

func TestCheckSchema_InvalidInput(t *testing.T) {
	_, err := CheckSchema(nil, exportRecord{})
	assert.Error(t, err)

	db, _ := setupMockDB(t)
	_, err = CheckSchema(db, untabled{})
	assert.EqualError(t, err, "model untabled does not implement TableName")

	_, err = CheckSchema(db, "exports")
	assert.Error(t, err)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "item_name", parseGormColumn("primaryKey;column:item_name;type:varchar(100)"))
	assert.Equal(t, "int(11)", parseGormType("column:id;type:int(11)"))
	assert.Equal(t, "", parseGormType("column:id"))
}
