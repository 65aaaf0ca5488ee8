package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"lifeline-blood/internal/adapters/persistence/models"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const campID = "3f7a1c2e-8a4b-4f0e-9d3c-2b1a0e9f8c7d"

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestDeleteWithDonors_CommitsBothDeletes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `donors` WHERE camp_id = ?")).
		WithArgs(campID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `camps` WHERE id = ?")).
		WithArgs(campID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := repo.DeleteWithDonors(context.Background(), campID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithDonors_RollsBackWhenDonorDeleteFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `donors` WHERE camp_id = ?")).
		WithArgs(campID).
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	_, err := repo.DeleteWithDonors(context.Background(), campID)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithDonors_RollsBackWhenCampMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `donors` WHERE camp_id = ?")).
		WithArgs(campID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `camps` WHERE id = ?")).
		WithArgs(campID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.DeleteWithDonors(context.Background(), campID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountsByCamp_SingleGroupedQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonorRepository(db)

	mock.ExpectQuery("SELECT camp_id, COUNT\\(\\*\\) AS count FROM `donors` GROUP BY `?camp_id`?").
		WillReturnRows(sqlmock.NewRows([]string{"camp_id", "count"}).
			AddRow("camp-a", 2).
			AddRow("camp-b", 5))

	counts, err := repo.CountsByCamp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"camp-a": 2, "camp-b": 5}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonorDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDonorRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `donors` WHERE id = ?")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampCreate_DuplicateNameTranslated(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampRepository(db)

	mock.ExpectExec("INSERT INTO `camps`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'Camp A' for key 'idx_camps_name'"})

	err := repo.Create(context.Background(), &models.Camp{Name: "Camp A"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampGetByName_IgnoresCase(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `camps` WHERE LOWER(name) = LOWER(?)")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(campID, "Town Hall Drive"))

	camp, err := repo.GetByName(context.Background(), "town hall drive")
	require.NoError(t, err)
	assert.Equal(t, "Town Hall Drive", camp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampExistsByName_IgnoresCase(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `camps` WHERE LOWER(name) = LOWER(?) AND id <> ?")).
		WithArgs("CAMP A", campID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := repo.ExistsByName(context.Background(), "CAMP A", campID)
	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
