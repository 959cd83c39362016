package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavouriteAdds(t *testing.T) {
	gdb, mock := newMockDB(t)
	fc := NewFavouriteController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "poems"`).WillReturnRows(poemRows(1, "Kept", true, 2))
	mock.ExpectQuery(`SELECT \* FROM "favourites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "poem_id", "created_at"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "favourites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	r := newTestRouter()
	r.POST("/favorites/:poemId", asUser(1, "rumi"), fc.ToggleFavourite)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Added to favorites")
	assert.Contains(t, w.Body.String(), `"isFavorited":true`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavouriteRemoves(t *testing.T) {
	gdb, mock := newMockDB(t)
	fc := NewFavouriteController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "poems"`).WillReturnRows(poemRows(1, "Kept", true, 2))
	mock.ExpectQuery(`SELECT \* FROM "favourites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "poem_id", "created_at"}).
			AddRow(3, 1, 1, time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "favourites"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := newTestRouter()
	r.POST("/favorites/:poemId", asUser(1, "rumi"), fc.ToggleFavourite)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Removed from favorites")
	assert.Contains(t, w.Body.String(), `"isFavorited":false`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavouritePoemNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	fc := NewFavouriteController(gdb)

	mock.ExpectQuery(`SELECT \* FROM "poems"`).WillReturnRows(sqlmock.NewRows(poemColumns()))

	r := newTestRouter()
	r.POST("/favorites/:poemId", asUser(1, "rumi"), fc.ToggleFavourite)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites/404", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFavouritesJoinsBookmarks(t *testing.T) {
	gdb, mock := newMockDB(t)
	fc := NewFavouriteController(gdb)

	mock.ExpectQuery(`JOIN favourites ON favourites\.poem_id = poems\.id`).
		WillReturnRows(poemRows(1, "Bookmarked", true, 2))
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRows(2, "basho"))

	r := newTestRouter()
	r.GET("/favorites", asUser(1, "rumi"), fc.GetFavourites)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bookmarked")
	require.NoError(t, mock.ExpectationsWereMet())
}
