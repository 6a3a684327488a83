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

type NoticeController struct{}

func (nc NoticeController) GetNotices(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := utils.ParsePagination(r)

		rows, err := db.Query(
			"SELECT id, title, titleEng, date, category, priority, description, descriptionEng, author, isPinned FROM notices ORDER BY isPinned DESC, date DESC, id DESC LIMIT ? OFFSET ?",
			limit, offset)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}
		defer rows.Close()

		notices := []models.Notice{}
		for rows.Next() {
			var n models.Notice
			if err := rows.Scan(&n.ID, &n.Title, &n.TitleEng, &n.Date, &n.Category, &n.Priority, &n.Description, &n.DescriptionEng, &n.Author, &n.IsPinned); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
			notices = append(notices, n)
		}

		utils.ResponseJSON(w, http.StatusOK, notices)
	}
}

func (nc NoticeController) AddNotice(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var notice models.Notice
		if err := json.NewDecoder(r.Body).Decode(&notice); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		if err := validate.Struct(notice); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Missing required notice fields."})
			return
		}

		_, err := db.Exec(
			"INSERT INTO notices (title, titleEng, date, category, priority, description, descriptionEng, author, isPinned) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			notice.Title, notice.TitleEng, notice.Date, notice.Category, notice.Priority, notice.Description, notice.DescriptionEng, notice.Author, notice.IsPinned)
		if err != nil {
			log.Println("SQL Insert Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusCreated, map[string]string{"msg": "Notice added successfully"})
	}
}

func (nc NoticeController) UpdateNotice(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid notice id."})
			return
		}

		var notice models.Notice
		if err := json.NewDecoder(r.Body).Decode(&notice); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body."})
			return
		}

		if err := validate.Struct(notice); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Missing required notice fields."})
			return
		}

		_, err = db.Exec(
			"UPDATE notices SET title=?, titleEng=?, date=?, category=?, priority=?, description=?, descriptionEng=?, author=?, isPinned=? WHERE id=?",
			notice.Title, notice.TitleEng, notice.Date, notice.Category, notice.Priority, notice.Description, notice.DescriptionEng, notice.Author, notice.IsPinned, id)
		if err != nil {
			log.Println("SQL Update Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Notice updated successfully"})
	}
}

func (nc NoticeController) DeleteNotice(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid notice id."})
			return
		}

		result, err := db.Exec("DELETE FROM notices WHERE id = ?", id)
		if err != nil {
			log.Println("SQL Delete Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Notice not found"})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Notice deleted successfully"})
	}
}
