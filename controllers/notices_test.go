package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"school-portal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

const (
	noticesListQuery   = "SELECT id, title, titleEng, date, category, priority, description, descriptionEng, author, isPinned FROM notices ORDER BY isPinned DESC, date DESC, id DESC LIMIT ? OFFSET ?"
	noticesInsertQuery = "INSERT INTO notices (title, titleEng, date, category, priority, description, descriptionEng, author, isPinned) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	noticesUpdateQuery = "UPDATE notices SET title=?, titleEng=?, date=?, category=?, priority=?, description=?, descriptionEng=?, author=?, isPinned=? WHERE id=?"
	noticesDeleteQuery = "DELETE FROM notices WHERE id = ?"
)

const noticeJSON = `{
	"title": "सूचना",
	"titleEng": "Notice",
	"date": "2024-01-10",
	"category": "General",
	"priority": "High",
	"description": "वर्णन",
	"descriptionEng": "Description",
	"author": "Principal",
	"isPinned": true
}`

func TestGetNoticesPaginated(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "title", "titleEng", "date", "category", "priority", "description", "descriptionEng", "author", "isPinned"}).
		AddRow(2, "b", "b-eng", "2024-02-01", "Exam", "High", "d", "d-eng", "Principal", true).
		AddRow(1, "a", "a-eng", "2024-01-01", "General", "Low", "d", "d-eng", "Clerk", false)
	mock.ExpectQuery(noticesListQuery).WithArgs(10, 10).WillReturnRows(rows)

	r := httptest.NewRequest("GET", "/api/notices?page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	NoticeController{}.GetNotices(db)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	var notices []models.Notice
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&notices))
	assert.Len(t, notices, 2)
	assert.Equal(t, 2, notices[0].ID)
	assert.True(t, notices[0].IsPinned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddNoticeMissingFields(t *testing.T) {
	db, mock := newMockDB(t)

	r := httptest.NewRequest("POST", "/api/notices", strings.NewReader(`{"title":"only title"}`))
	rec := httptest.NewRecorder()
	NoticeController{}.AddNotice(db)(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddNoticeSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(noticesInsertQuery).
		WithArgs("सूचना", "Notice", "2024-01-10", "General", "High", "वर्णन", "Description", "Principal", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	r := httptest.NewRequest("POST", "/api/notices", strings.NewReader(noticeJSON))
	rec := httptest.NewRecorder()
	NoticeController{}.AddNotice(db)(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Notice added successfully", decodeBody(t, rec)["msg"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNoticeSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(noticesUpdateQuery).
		WithArgs("सूचना", "Notice", "2024-01-10", "General", "High", "वर्णन", "Description", "Principal", true, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := httptest.NewRequest("PUT", "/api/notices/5", strings.NewReader(noticeJSON))
	r = mux.SetURLVars(r, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	NoticeController{}.UpdateNotice(db)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNoticeSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(noticesDeleteQuery).WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 1))

	r := httptest.NewRequest("DELETE", "/api/notices/5", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()
	NoticeController{}.DeleteNotice(db)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNoticeNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(noticesDeleteQuery).WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))

	r := httptest.NewRequest("DELETE", "/api/notices/99", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	NoticeController{}.DeleteNotice(db)(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Notice not found", decodeBody(t, rec)["msg"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNoticeInvalidID(t *testing.T) {
	db, mock := newMockDB(t)

	r := httptest.NewRequest("DELETE", "/api/notices/abc", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	NoticeController{}.DeleteNotice(db)(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
