package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discussionRows(id, poemID, authorID uint, content string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "poem_id", "author_id", "content"}).
		AddRow(id, time.Now(), poemID, authorID, content)
}

func TestAddDiscussionRequiresContent(t *testing.T) {
	gdb, mock := newMockDB(t)
	dc := NewDiscussionController(gdb)

	r := newTestRouter()
	r.POST("/discussions/:poemId", asUser(1, "rumi"), dc.AddDiscussion)

	for _, body := range []string{`{}`, `{"content":"   "}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/discussions/1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Comment text is required")
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddDiscussionPersists(t *testing.T) {
	gdb, mock := newMockDB(t)
	dc := NewDiscussionController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "poems"`).WillReturnRows(poemRows(1, "Discussed", true, 2))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "discussions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "discussions"`).WillReturnRows(discussionRows(9, 1, 1, "what a line"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRows(1, "rumi"))

	r := newTestRouter()
	r.POST("/discussions/:poemId", asUser(1, "rumi"), dc.AddDiscussion)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/discussions/1", bytes.NewBufferString(`{"content":"what a line"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "what a line")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDiscussionsListsNewestFirst(t *testing.T) {
	gdb, mock := newMockDB(t)
	dc := NewDiscussionController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "discussions" WHERE poem_id = \$1 ORDER BY created_at DESC`).
		WillReturnRows(discussionRows(9, 1, 1, "what a line"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRows(1, "rumi"))

	r := newTestRouter()
	r.GET("/discussions/:poemId", dc.GetDiscussions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/discussions/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "what a line")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDiscussionRejectsNonAuthor(t *testing.T) {
	gdb, mock := newMockDB(t)
	dc := NewDiscussionController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "discussions"`).WillReturnRows(discussionRows(9, 1, 2, "not yours"))

	r := newTestRouter()
	r.DELETE("/discussions/:discussionId", asUser(1, "rumi"), dc.DeleteDiscussion)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/discussions/9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
