package repo

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestFindByEmail_Hit(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"userId", "userName", "emailId", "password", "role"}).
		AddRow(1, "danny", "danny@gmail.com", "$2a$10$hash", "user")
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE emailId = \\?").
		WithArgs("danny@gmail.com", 1).
		WillReturnRows(rows)

	u, err := NewUserRepo(db).FindByEmail("danny@gmail.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.EqualValues(t, 1, u.UserID)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_Miss(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE emailId = \\?").
		WithArgs("nope@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"userId"}))

	u, err := NewUserRepo(db).FindByEmail("nope@x.com")
	require.NoError(t, err)
	assert.Nil(t, u, "record-not-found must map to nil, not an error")
}

func TestIsDupKey(t *testing.T) {
	assert.True(t, IsDupKey(errors.New("Error 1062: Duplicate entry 'danny@gmail.com' for key 'emailId'")))
	assert.True(t, IsDupKey(errors.New("UNIQUE constraint failed: users.emailId")))
	assert.True(t, IsDupKey(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)))
	assert.False(t, IsDupKey(errors.New("connection refused")))
	assert.False(t, IsDupKey(nil))
}
