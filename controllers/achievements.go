package controllers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"school-portal/models"
	"school-portal/utils"

	"github.com/gorilla/mux"
)

type AchievementController struct{}

const maxUploadMemory = 10 << 20 // 10MB

func (ac AchievementController) GetAchievements(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := utils.ParsePagination(r)

		rows, err := db.Query(
			"SELECT id, title, date, year, description, images, category FROM achievements ORDER BY date DESC, id DESC LIMIT ? OFFSET ?",
			limit, offset)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}
		defer rows.Close()

		achievements := []models.Achievement{}
		for rows.Next() {
			var a models.Achievement
			var imagesRaw []byte
			if err := rows.Scan(&a.ID, &a.Title, &a.Date, &a.Year, &a.Description, &imagesRaw, &a.Category); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
			if err := json.Unmarshal(imagesRaw, &a.Images); err != nil {
				log.Printf("Error decoding images for achievement %d: %v", a.ID, err)
				a.Images = []string{}
			}
			achievements = append(achievements, a)
		}

		utils.ResponseJSON(w, http.StatusOK, achievements)
	}
}

func (ac AchievementController) AddAchievement(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid form data"})
			return
		}

		title := r.FormValue("title")
		date := r.FormValue("date")
		year := r.FormValue("year")
		description := r.FormValue("description")
		category := r.FormValue("category")
		if title == "" || date == "" || year == "" || description == "" || category == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{
				Message: "title, date, year, description and category are required fields.",
			})
			return
		}

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "At least one achievement image is required"})
			return
		}

		imageURLs, err := utils.UploadAll(files)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, utils.ErrBadFileType) {
				status = http.StatusBadRequest
			}
			log.Println("Error uploading achievement images:", err)
			utils.RespondWithError(w, status, models.Error{Message: err.Error()})
			return
		}

		imagesJSON, err := json.Marshal(imageURLs)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		result, err := db.Exec(
			"INSERT INTO achievements (title, date, year, description, images, category) VALUES (?, ?, ?, ?, ?, ?)",
			title, date, year, description, imagesJSON, category)
		if err != nil {
			log.Println("SQL Insert Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		id, _ := result.LastInsertId()
		utils.ResponseJSON(w, http.StatusCreated, map[string]interface{}{"msg": "Achievement added successfully", "id": id})
	}
}

func (ac AchievementController) UpdateAchievement(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid achievement id."})
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid form data"})
			return
		}

		title := r.FormValue("title")
		date := r.FormValue("date")
		year := r.FormValue("year")
		description := r.FormValue("description")
		category := r.FormValue("category")
		if title == "" || date == "" || year == "" || description == "" || category == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{
				Message: "title, date, year, description and category are required fields.",
			})
			return
		}

		// New uploads replace the whole image set. With no uploads, the client
		// may pass the kept URLs back through the images form field; otherwise
		// the stored set is left untouched.
		var imageURLs []string
		if files := r.MultipartForm.File["images"]; len(files) > 0 {
			imageURLs, err = utils.UploadAll(files)
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, utils.ErrBadFileType) {
					status = http.StatusBadRequest
				}
				log.Println("Error uploading achievement images:", err)
				utils.RespondWithError(w, status, models.Error{Message: err.Error()})
				return
			}
		} else if existing := r.FormValue("images"); existing != "" {
			if err := json.Unmarshal([]byte(existing), &imageURLs); err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "images must be a JSON array of URLs"})
				return
			}
		}

		query := "UPDATE achievements SET title = ?, date = ?, year = ?, description = ?, category = ?"
		params := []interface{}{title, date, year, description, category}
		if len(imageURLs) > 0 {
			imagesJSON, err := json.Marshal(imageURLs)
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
			query += ", images = ?"
			params = append(params, imagesJSON)
		}
		query += " WHERE id = ?"
		params = append(params, id)

		if _, err := db.Exec(query, params...); err != nil {
			log.Println("SQL Update Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Achievement updated successfully"})
	}
}

func (ac AchievementController) DeleteAchievement(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid achievement id."})
			return
		}

		result, err := db.Exec("DELETE FROM achievements WHERE id = ?", id)
		if err != nil {
			log.Println("SQL Delete Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Achievement not found"})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Achievement deleted successfully"})
	}
}
