package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

const (
	achievementsInsertQuery = "INSERT INTO achievements (title, date, year, description, images, category) VALUES (?, ?, ?, ?, ?, ?)"
	achievementsDeleteQuery = "DELETE FROM achievements WHERE id = ?"
)

var achievementFields = map[string]string{
	"title":       "State Science Fair",
	"date":        "2024-02-20",
	"year":        "2024",
	"description": "First place in the state science fair.",
	"category":    "Academics",
}

func TestAddAchievementRequiresImages(t *testing.T) {
	db, mock := newMockDB(t)

	r := multipartRequest(t, "POST", "/api/achievements", achievementFields, nil)
	rec := httptest.NewRecorder()
	AchievementController{}.AddAchievement(db)(rec, r)

	// No file is a client error; no partial row may be written.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "At least one achievement image is required", decodeBody(t, rec)["msg"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddAchievementSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	stubUploads(t)

	images := []byte(`["https://cdn.example.com/school_portal/one.jpg","https://cdn.example.com/school_portal/two.png"]`)
	mock.ExpectExec(achievementsInsertQuery).
		WithArgs("State Science Fair", "2024-02-20", "2024", "First place in the state science fair.", images, "Academics").
		WillReturnResult(sqlmock.NewResult(4, 1))

	r := multipartRequest(t, "POST", "/api/achievements", achievementFields, map[string][]string{"images": {"one.jpg", "two.png"}})
	rec := httptest.NewRecorder()
	AchievementController{}.AddAchievement(db)(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(4), decodeBody(t, rec)["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddAchievementMissingFields(t *testing.T) {
	db, mock := newMockDB(t)

	r := multipartRequest(t, "POST", "/api/achievements", map[string]string{"title": "only"}, map[string][]string{"images": {"one.jpg"}})
	rec := httptest.NewRecorder()
	AchievementController{}.AddAchievement(db)(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAchievementReplacesImages(t *testing.T) {
	db, mock := newMockDB(t)
	stubUploads(t)

	images := []byte(`["https://cdn.example.com/school_portal/new.jpg"]`)
	mock.ExpectExec("UPDATE achievements SET title = ?, date = ?, year = ?, description = ?, category = ?, images = ? WHERE id = ?").
		WithArgs("State Science Fair", "2024-02-20", "2024", "First place in the state science fair.", "Academics", images, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := multipartRequest(t, "PUT", "/api/achievements/4", achievementFields, map[string][]string{"images": {"new.jpg"}})
	r = mux.SetURLVars(r, map[string]string{"id": "4"})
	rec := httptest.NewRecorder()
	AchievementController{}.UpdateAchievement(db)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAchievementPassthroughImages(t *testing.T) {
	db, mock := newMockDB(t)

	fields := map[string]string{}
	for k, v := range achievementFields {
		fields[k] = v
	}
	fields["images"] = `["https://cdn.example.com/school_portal/kept.jpg"]`

	images := []byte(`["https://cdn.example.com/school_portal/kept.jpg"]`)
	mock.ExpectExec("UPDATE achievements SET title = ?, date = ?, year = ?, description = ?, category = ?, images = ? WHERE id = ?").
		WithArgs("State Science Fair", "2024-02-20", "2024", "First place in the state science fair.", "Academics", images, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := multipartRequest(t, "PUT", "/api/achievements/4", fields, nil)
	r = mux.SetURLVars(r, map[string]string{"id": "4"})
	rec := httptest.NewRecorder()
	AchievementController{}.UpdateAchievement(db)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAchievementKeepsImagesWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE achievements SET title = ?, date = ?, year = ?, description = ?, category = ? WHERE id = ?").
		WithArgs("State Science Fair", "2024-02-20", "2024", "First place in the state science fair.", "Academics", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := multipartRequest(t, "PUT", "/api/achievements/4", achievementFields, nil)
	r = mux.SetURLVars(r, map[string]string{"id": "4"})
	rec := httptest.NewRecorder()
	AchievementController{}.UpdateAchievement(db)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAchievementNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(achievementsDeleteQuery).WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))

	r := httptest.NewRequest("DELETE", "/api/achievements/99", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	AchievementController{}.DeleteAchievement(db)(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
