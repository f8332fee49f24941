package services

import (
	"context"
	"testing"

	"libshelf/internal/adapters/persistence/repositories"
	"libshelf/internal/config"
	"libshelf/internal/core/domain"
	"libshelf/internal/pkg/jwt"
	"libshelf/internal/pkg/password"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 60,
		},
	}
}

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db), testConfig())
	return svc, mock
}

func TestAuthService_Register(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(countRows(0))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	user, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Budi Petarung",
		Username: "budi",
		Password: "123",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "budi", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(countRows(1))

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Budi",
		Username: "budi",
		Password: "123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// no insert attempted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func userRows(t *testing.T, id uint, name, username, plain string) *sqlmock.Rows {
	t.Helper()
	hashed, err := password.Hash(plain)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "name", "username", "password"}).
		AddRow(id, name, username, hashed)
}

func TestAuthService_Login(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(userRows(t, 1, "Budi Petarung", "budi", "123"))

	result, err := svc.Login(context.Background(), &LoginInput{
		Username: "budi",
		Password: "123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	// the issued token carries the user's id and name
	claims, err := jwt.ValidateAccessToken(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "Budi Petarung", claims.Name)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(userRows(t, 1, "Budi Petarung", "budi", "123"))

	_, err := svc.Login(context.Background(), &LoginInput{
		Username: "budi",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "username", "password"}))

	_, err := svc.Login(context.Background(), &LoginInput{
		Username: "ghost",
		Password: "123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
