package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/sessions"
	"github.com/poem-space/api-go/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

// stubSessions keeps sessions in memory so auth handlers can be exercised
// without redis.
type stubSessions struct {
	data map[string]sessions.Data
}

func newStubSessions() *stubSessions {
	return &stubSessions{data: make(map[string]sessions.Data)}
}

func (s *stubSessions) Create(_ context.Context, data sessions.Data) (string, error) {
	id := "test-session"
	s.data[id] = data
	return id, nil
}

func (s *stubSessions) Get(_ context.Context, id string) (*sessions.Data, error) {
	data, ok := s.data[id]
	if !ok {
		return nil, sessions.ErrNotFound
	}
	return &data, nil
}

func (s *stubSessions) Delete(_ context.Context, id string) error {
	delete(s.data, id)
	return nil
}

// asUser injects identity claims the way the auth middleware would.
func asUser(userID uint, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(utils.UserContextKey), &utils.UserClaims{UserID: userID, Username: username})
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func poemColumns() []string {
	return []string{"id", "created_at", "updated_at", "deleted_at", "title", "content", "tags", "visibility", "ai_insight", "author_id"}
}

func poemRows(id uint, title string, visibility bool, authorID uint) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(poemColumns()).
		AddRow(id, now, now, nil, title, "some verses", "{}", visibility, "", authorID)
}

func userRows(id uint, username string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email"}).
		AddRow(id, username, username+"@example.com")
}
