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
	teachersListQuery   = "SELECT id, name, gender, qual, role, subjects, class, exp FROM faculty_teachers ORDER BY id ASC LIMIT ? OFFSET ?"
	teachersInsertQuery = "INSERT INTO faculty_teachers (name, gender, qual, role, subjects, class, exp) VALUES (?, ?, ?, ?, ?, ?, ?)"
	teachersDeleteQuery = "DELETE FROM faculty_teachers WHERE id = ?"
	staffInsertQuery    = "INSERT INTO faculty_non_teaching (name, gender, role, qual, exp) VALUES (?, ?, ?, ?, ?)"
)

func TestAddTeacherStoresSubjectsAsArray(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(teachersInsertQuery).
		WithArgs("Mr. Joshi", "Male", "M.Sc. B.Ed.", "PGT", []byte(`["Math","Science"]`), "10th", "2015-06-01").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"name":"Mr. Joshi","gender":"Male","qual":"M.Sc. B.Ed.","role":"PGT","subjects":["Math","Science"],"class":"10th","exp":"2015-06-01"}`
	r := httptest.NewRequest("POST", "/api/faculty/teachers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	FacultyController{}.AddTeacher(db)(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddTeacherCoercesCommaString(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(teachersInsertQuery).
		WithArgs("Mr. Joshi", "Male", "M.Sc. B.Ed.", "PGT", []byte(`["Math","Science"]`), "10th", "2015-06-01").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"name":"Mr. Joshi","gender":"Male","qual":"M.Sc. B.Ed.","role":"PGT","subjects":"Math, Science","class":"10th","exp":"2015-06-01"}`
	r := httptest.NewRequest("POST", "/api/faculty/teachers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	FacultyController{}.AddTeacher(db)(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTeachersRoundTripsSubjects(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "gender", "qual", "role", "subjects", "class", "exp"}).
		AddRow(1, "Mr. Joshi", "Male", "M.Sc. B.Ed.", "PGT", []byte(`["Math","Science"]`), "10th", "2015-06-01")
	mock.ExpectQuery(teachersListQuery).WithArgs(50, 0).WillReturnRows(rows)

	r := httptest.NewRequest("GET", "/api/faculty/teachers", nil)
	rec := httptest.NewRecorder()
	FacultyController{}.GetTeachers(db)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	var teachers []models.Teacher
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&teachers))
	assert.Len(t, teachers, 1)
	assert.Equal(t, models.SubjectList{"Math", "Science"}, teachers[0].Subjects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddTeacherRequiresSubjects(t *testing.T) {
	db, mock := newMockDB(t)

	body := `{"name":"Mr. Joshi","gender":"Male","qual":"M.Sc.","role":"PGT","subjects":[],"class":"10th","exp":"2015-06-01"}`
	r := httptest.NewRequest("POST", "/api/faculty/teachers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	FacultyController{}.AddTeacher(db)(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTeacherNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(teachersDeleteQuery).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))

	r := httptest.NewRequest("DELETE", "/api/faculty/teachers/7", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "7"})
	rec := httptest.NewRecorder()
	FacultyController{}.DeleteTeacher(db)(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddNonTeachingSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(staffInsertQuery).
		WithArgs("Mrs. Patil", "Female", "Librarian", "B.Lib.", "2018-04-15").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"name":"Mrs. Patil","gender":"Female","role":"Librarian","qual":"B.Lib.","exp":"2018-04-15"}`
	r := httptest.NewRequest("POST", "/api/faculty/non-teaching", strings.NewReader(body))
	rec := httptest.NewRecorder()
	FacultyController{}.AddNonTeaching(db)(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Staff added successfully", decodeBody(t, rec)["msg"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddNonTeachingMissingFields(t *testing.T) {
	db, mock := newMockDB(t)

	r := httptest.NewRequest("POST", "/api/faculty/non-teaching", strings.NewReader(`{"name":"Mrs. Patil"}`))
	rec := httptest.NewRecorder()
	FacultyController{}.AddNonTeaching(db)(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
