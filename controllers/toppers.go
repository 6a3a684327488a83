package controllers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"school-portal/models"
	"school-portal/utils"

	"github.com/gorilla/mux"
)

type TopperController struct{}

func (tc TopperController) GetToppers(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := utils.ParsePagination(r)

		rows, err := db.Query(
			"SELECT id, std, name, image, `group`, score, outOf, `rank` FROM topper_students ORDER BY `rank` ASC, score DESC LIMIT ? OFFSET ?",
			limit, offset)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}
		defer rows.Close()

		toppers := []models.Topper{}
		for rows.Next() {
			var t models.Topper
			if err := rows.Scan(&t.ID, &t.Standard, &t.Name, &t.Image, &t.Group, &t.Score, &t.OutOf, &t.Rank); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
			toppers = append(toppers, t)
		}

		utils.ResponseJSON(w, http.StatusOK, toppers)
	}
}

func parseTopperForm(r *http.Request) (models.Topper, string) {
	var topper models.Topper

	topper.Standard = r.FormValue("std")
	topper.Name = r.FormValue("name")
	topper.Group = r.FormValue("group")
	if topper.Standard == "" || topper.Name == "" || topper.Group == "" {
		return topper, "std, name and group are required fields."
	}

	var err error
	if topper.Score, err = utils.StrToInt(r.FormValue("score")); err != nil {
		return topper, "Invalid score format"
	}
	if topper.OutOf, err = utils.StrToInt(r.FormValue("outOf")); err != nil {
		return topper, "Invalid outOf format"
	}
	if topper.Rank, err = utils.StrToInt(r.FormValue("rank")); err != nil {
		return topper, "Invalid rank format"
	}
	return topper, ""
}

func (tc TopperController) AddTopper(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid form data"})
			return
		}

		topper, msg := parseTopperForm(r)
		if msg != "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: msg})
			return
		}

		file, header, err := r.FormFile("image")
		if err == http.ErrMissingFile {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Student image is required"})
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Error processing image upload"})
			return
		}
		defer file.Close()

		topper.Image, err = utils.UploadImage(file, header.Filename)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, utils.ErrBadFileType) {
				status = http.StatusBadRequest
			}
			log.Println("Error uploading topper image:", err)
			utils.RespondWithError(w, status, models.Error{Message: err.Error()})
			return
		}

		result, err := db.Exec(
			"INSERT INTO topper_students (std, name, image, `group`, score, outOf, `rank`) VALUES (?, ?, ?, ?, ?, ?, ?)",
			topper.Standard, topper.Name, topper.Image, topper.Group, topper.Score, topper.OutOf, topper.Rank)
		if err != nil {
			log.Println("SQL Insert Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		id, _ := result.LastInsertId()
		utils.ResponseJSON(w, http.StatusCreated, map[string]interface{}{"msg": "Topper added successfully", "id": id})
	}
}

func (tc TopperController) UpdateTopper(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid topper id."})
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid form data"})
			return
		}

		topper, msg := parseTopperForm(r)
		if msg != "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: msg})
			return
		}

		// The image column is only touched when a replacement file arrives.
		file, header, err := r.FormFile("image")
		if err != nil && err != http.ErrMissingFile {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Error processing image upload"})
			return
		}

		query := "UPDATE topper_students SET std = ?, name = ?, `group` = ?, score = ?, outOf = ?, `rank` = ? WHERE id = ?"
		params := []interface{}{topper.Standard, topper.Name, topper.Group, topper.Score, topper.OutOf, topper.Rank, id}

		if file != nil {
			defer file.Close()
			imageURL, err := utils.UploadImage(file, header.Filename)
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, utils.ErrBadFileType) {
					status = http.StatusBadRequest
				}
				log.Println("Error uploading topper image:", err)
				utils.RespondWithError(w, status, models.Error{Message: err.Error()})
				return
			}
			query = "UPDATE topper_students SET std = ?, name = ?, `group` = ?, score = ?, outOf = ?, `rank` = ?, image = ? WHERE id = ?"
			params = []interface{}{topper.Standard, topper.Name, topper.Group, topper.Score, topper.OutOf, topper.Rank, imageURL, id}
		}

		if _, err := db.Exec(query, params...); err != nil {
			log.Println("SQL Update Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Topper updated successfully"})
	}
}

func (tc TopperController) DeleteTopper(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid topper id."})
			return
		}

		result, err := db.Exec("DELETE FROM topper_students WHERE id = ?", id)
		if err != nil {
			log.Println("SQL Delete Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Topper not found"})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Topper deleted successfully"})
	}
}
