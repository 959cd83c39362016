package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewRejectsOutOfRangeRating(t *testing.T) {
	gdb, mock := newMockDB(t)
	rc := NewReviewController(gdb)

	r := newTestRouter()
	r.POST("/reviews/:poemId", asUser(1, "rumi"), rc.AddReview)

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`, `{"comment":"no rating"}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reviews/1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Rating must be between 1 and 5")
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReviewPoemNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	rc := NewReviewController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "poems"`).WillReturnRows(sqlmock.NewRows(poemColumns()))

	r := newTestRouter()
	r.POST("/reviews/:poemId", asUser(1, "rumi"), rc.AddReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews/404", bytes.NewBufferString(`{"rating":4}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReviewPersists(t *testing.T) {
	gdb, mock := newMockDB(t)
	rc := NewReviewController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "poems"`).WillReturnRows(poemRows(1, "Reviewed", true, 2))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "reviews"`).WillReturnRows(reviewRows(7, 1, 1, 4))
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRows(1, "rumi"))

	r := newTestRouter()
	r.POST("/reviews/:poemId", asUser(1, "rumi"), rc.AddReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews/1", bytes.NewBufferString(`{"rating":4,"comment":"lovely"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":4`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReviewRejectsNonAuthor(t *testing.T) {
	gdb, mock := newMockDB(t)
	rc := NewReviewController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "reviews"`).WillReturnRows(reviewRows(7, 1, 2, 4))

	r := newTestRouter()
	r.DELETE("/reviews/:reviewId", asUser(1, "rumi"), rc.DeleteReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/reviews/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReviewByAuthor(t *testing.T) {
	gdb, mock := newMockDB(t)
	rc := NewReviewController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "reviews"`).WillReturnRows(reviewRows(7, 1, 1, 4))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "reviews"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := newTestRouter()
	r.DELETE("/reviews/:reviewId", asUser(1, "rumi"), rc.DeleteReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/reviews/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Review deleted")
	require.NoError(t, mock.ExpectationsWereMet())
}
