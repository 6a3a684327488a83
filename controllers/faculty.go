package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"school-portal/models"
	"school-portal/utils"

	"github.com/gorilla/mux"
)

type FacultyController struct{}

// --- Teaching faculty ---

func (fc FacultyController) GetTeachers(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := utils.ParsePagination(r)

		rows, err := db.Query(
			"SELECT id, name, gender, qual, role, subjects, class, exp FROM faculty_teachers ORDER BY id ASC LIMIT ? OFFSET ?",
			limit, offset)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}
		defer rows.Close()

		teachers := []models.Teacher{}
		for rows.Next() {
			var t models.Teacher
			var subjectsRaw []byte
			if err := rows.Scan(&t.ID, &t.Name, &t.Gender, &t.Qualification, &t.Role, &subjectsRaw, &t.Class, &t.Experience); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
			if err := json.Unmarshal(subjectsRaw, &t.Subjects); err != nil {
				log.Printf("Error decoding subjects for teacher %d: %v", t.ID, err)
				t.Subjects = models.SubjectList{}
			}
			teachers = append(teachers, t)
		}

		utils.ResponseJSON(w, http.StatusOK, teachers)
	}
}

func (fc FacultyController) AddTeacher(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var teacher models.Teacher
		if err := json.NewDecoder(r.Body).Decode(&teacher); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		if err := validate.Struct(teacher); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Missing required teacher fields."})
			return
		}

		subjectsJSON, err := json.Marshal(teacher.Subjects)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		_, err = db.Exec(
			"INSERT INTO faculty_teachers (name, gender, qual, role, subjects, class, exp) VALUES (?, ?, ?, ?, ?, ?, ?)",
			teacher.Name, teacher.Gender, teacher.Qualification, teacher.Role, subjectsJSON, teacher.Class, teacher.Experience)
		if err != nil {
			log.Println("SQL Insert Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusCreated, map[string]string{"msg": "Teacher added successfully"})
	}
}

func (fc FacultyController) UpdateTeacher(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid teacher id."})
			return
		}

		var teacher models.Teacher
		if err := json.NewDecoder(r.Body).Decode(&teacher); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		if err := validate.Struct(teacher); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Missing required teacher fields."})
			return
		}

		subjectsJSON, err := json.Marshal(teacher.Subjects)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		_, err = db.Exec(
			"UPDATE faculty_teachers SET name=?, gender=?, qual=?, role=?, subjects=?, class=?, exp=? WHERE id=?",
			teacher.Name, teacher.Gender, teacher.Qualification, teacher.Role, subjectsJSON, teacher.Class, teacher.Experience, id)
		if err != nil {
			log.Println("SQL Update Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Teacher updated successfully"})
	}
}

func (fc FacultyController) DeleteTeacher(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid teacher id."})
			return
		}

		result, err := db.Exec("DELETE FROM faculty_teachers WHERE id = ?", id)
		if err != nil {
			log.Println("SQL Delete Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Teacher not found"})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Teacher deleted successfully"})
	}
}

// --- Non-teaching staff ---

func (fc FacultyController) GetNonTeaching(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := utils.ParsePagination(r)

		rows, err := db.Query(
			"SELECT id, name, gender, role, qual, exp FROM faculty_non_teaching ORDER BY id ASC LIMIT ? OFFSET ?",
			limit, offset)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}
		defer rows.Close()

		staff := []models.NonTeachingStaff{}
		for rows.Next() {
			var s models.NonTeachingStaff
			if err := rows.Scan(&s.ID, &s.Name, &s.Gender, &s.Role, &s.Qualification, &s.Experience); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
			staff = append(staff, s)
		}

		utils.ResponseJSON(w, http.StatusOK, staff)
	}
}

func (fc FacultyController) AddNonTeaching(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var staff models.NonTeachingStaff
		if err := json.NewDecoder(r.Body).Decode(&staff); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		if err := validate.Struct(staff); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Missing required staff fields."})
			return
		}

		_, err := db.Exec(
			"INSERT INTO faculty_non_teaching (name, gender, role, qual, exp) VALUES (?, ?, ?, ?, ?)",
			staff.Name, staff.Gender, staff.Role, staff.Qualification, staff.Experience)
		if err != nil {
			log.Println("SQL Insert Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusCreated, map[string]string{"msg": "Staff added successfully"})
	}
}

func (fc FacultyController) UpdateNonTeaching(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid staff id."})
			return
		}

		var staff models.NonTeachingStaff
		if err := json.NewDecoder(r.Body).Decode(&staff); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		if err := validate.Struct(staff); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Missing required staff fields."})
			return
		}

		_, err = db.Exec(
			"UPDATE faculty_non_teaching SET name=?, gender=?, role=?, qual=?, exp=? WHERE id=?",
			staff.Name, staff.Gender, staff.Role, staff.Qualification, staff.Experience, id)
		if err != nil {
			log.Println("SQL Update Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Staff updated successfully"})
	}
}

func (fc FacultyController) DeleteNonTeaching(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid staff id."})
			return
		}

		result, err := db.Exec("DELETE FROM faculty_non_teaching WHERE id = ?", id)
		if err != nil {
			log.Println("SQL Delete Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Staff not found"})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Staff deleted successfully"})
	}
}
