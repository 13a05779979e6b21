package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow("user-1", "Ada", "ada@example.com")

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(rows)

	user, err := repo.FindByEmail("ada@example.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.Equal(t, "Ada", user.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	_, err := repo.FindByEmail("missing@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_CountByIDs(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WithArgs("user-1", "user-2").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByIDs([]string{"user-1", "user-2"})
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	require.NoError(t, mock.ExpectationsWereMet())
}
