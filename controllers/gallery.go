package controllers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"

	"school-portal/models"
	"school-portal/utils"

	"github.com/gorilla/mux"
)

type GalleryController struct{}

func (gc GalleryController) GetGalleryItems(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := utils.ParsePagination(r)

		rows, err := db.Query(
			"SELECT id, title, category, date, shortDescription, thumbnail, fullDescription FROM gallery_items ORDER BY date DESC, id DESC LIMIT ? OFFSET ?",
			limit, offset)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}
		defer rows.Close()

		items := []models.GalleryItem{}
		var ids []interface{}
		for rows.Next() {
			var item models.GalleryItem
			if err := rows.Scan(&item.ID, &item.Title, &item.Category, &item.Date, &item.ShortDescription, &item.Thumbnail, &item.FullDescription); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
			item.Images = []string{}
			items = append(items, item)
			ids = append(ids, item.ID)
		}

		// One batched lookup for the whole page instead of a query per item.
		if len(ids) > 0 {
			placeholders := "?" + strings.Repeat(",?", len(ids)-1)
			imgRows, err := db.Query(
				"SELECT gallery_item_id, image FROM gallery_images WHERE gallery_item_id IN ("+placeholders+") ORDER BY id ASC",
				ids...)
			if err != nil {
				log.Println("SQL Select Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
			defer imgRows.Close()

			imagesByItem := map[int][]string{}
			for imgRows.Next() {
				var itemID int
				var image string
				if err := imgRows.Scan(&itemID, &image); err != nil {
					log.Println("SQL Scan Error:", err)
					utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
					return
				}
				imagesByItem[itemID] = append(imagesByItem[itemID], image)
			}
			for i := range items {
				if images, ok := imagesByItem[items[i].ID]; ok {
					items[i].Images = images
				}
			}
		}

		utils.ResponseJSON(w, http.StatusOK, items)
	}
}

func (gc GalleryController) CreateGalleryItem(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid form data"})
			return
		}

		title := r.FormValue("title")
		category := r.FormValue("category")
		date := r.FormValue("date")
		shortDescription := r.FormValue("shortDescription")
		fullDescription := r.FormValue("fullDescription")
		if title == "" || category == "" || date == "" || shortDescription == "" || fullDescription == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{
				Message: "title, category, date, shortDescription and fullDescription are required fields.",
			})
			return
		}

		thumbFile, thumbHeader, err := r.FormFile("thumbnail")
		if err == http.ErrMissingFile {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Thumbnail image is required"})
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Error processing thumbnail upload"})
			return
		}
		defer thumbFile.Close()

		thumbnailURL, err := utils.UploadImage(thumbFile, thumbHeader.Filename)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, utils.ErrBadFileType) {
				status = http.StatusBadRequest
			}
			log.Println("Error uploading thumbnail:", err)
			utils.RespondWithError(w, status, models.Error{Message: err.Error()})
			return
		}

		imageURLs, err := utils.UploadAll(r.MultipartForm.File["images"])
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, utils.ErrBadFileType) {
				status = http.StatusBadRequest
			}
			log.Println("Error uploading gallery images:", err)
			utils.RespondWithError(w, status, models.Error{Message: err.Error()})
			return
		}

		// The parent row and its child images land together or not at all.
		tx, err := db.Begin()
		if err != nil {
			log.Println("Error starting transaction:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		result, err := tx.Exec(
			"INSERT INTO gallery_items (title, category, date, shortDescription, thumbnail, fullDescription) VALUES (?, ?, ?, ?, ?, ?)",
			title, category, date, shortDescription, thumbnailURL, fullDescription)
		if err != nil {
			tx.Rollback()
			log.Println("SQL Insert Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		itemID, err := result.LastInsertId()
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		for _, url := range imageURLs {
			if _, err := tx.Exec("INSERT INTO gallery_images (gallery_item_id, image) VALUES (?, ?)", itemID, url); err != nil {
				tx.Rollback()
				log.Println("SQL Insert Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
		}

		if err := tx.Commit(); err != nil {
			log.Println("Error committing transaction:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusCreated, map[string]interface{}{"msg": "Gallery item created successfully", "id": itemID})
	}
}

func (gc GalleryController) UpdateGalleryItem(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid gallery item id."})
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid form data"})
			return
		}

		title := r.FormValue("title")
		category := r.FormValue("category")
		date := r.FormValue("date")
		shortDescription := r.FormValue("shortDescription")
		fullDescription := r.FormValue("fullDescription")
		if title == "" || category == "" || date == "" || shortDescription == "" || fullDescription == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{
				Message: "title, category, date, shortDescription and fullDescription are required fields.",
			})
			return
		}

		// Replacement thumbnail is optional; the stored one survives otherwise.
		var thumbnailURL string
		thumbFile, thumbHeader, err := r.FormFile("thumbnail")
		if err != nil && err != http.ErrMissingFile {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Error processing thumbnail upload"})
			return
		}
		if thumbFile != nil {
			defer thumbFile.Close()
			thumbnailURL, err = utils.UploadImage(thumbFile, thumbHeader.Filename)
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, utils.ErrBadFileType) {
					status = http.StatusBadRequest
				}
				log.Println("Error uploading thumbnail:", err)
				utils.RespondWithError(w, status, models.Error{Message: err.Error()})
				return
			}
		}

		// New images append to the item; there is no child-image delete path.
		imageURLs, err := utils.UploadAll(r.MultipartForm.File["images"])
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, utils.ErrBadFileType) {
				status = http.StatusBadRequest
			}
			log.Println("Error uploading gallery images:", err)
			utils.RespondWithError(w, status, models.Error{Message: err.Error()})
			return
		}

		tx, err := db.Begin()
		if err != nil {
			log.Println("Error starting transaction:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		_, err = tx.Exec(
			"UPDATE gallery_items SET title = ?, category = ?, date = ?, shortDescription = ?, fullDescription = ? WHERE id = ?",
			title, category, date, shortDescription, fullDescription, id)
		if err != nil {
			tx.Rollback()
			log.Println("SQL Update Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		if thumbnailURL != "" {
			if _, err := tx.Exec("UPDATE gallery_items SET thumbnail = ? WHERE id = ?", thumbnailURL, id); err != nil {
				tx.Rollback()
				log.Println("SQL Update Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
		}

		for _, url := range imageURLs {
			if _, err := tx.Exec("INSERT INTO gallery_images (gallery_item_id, image) VALUES (?, ?)", id, url); err != nil {
				tx.Rollback()
				log.Println("SQL Insert Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
				return
			}
		}

		if err := tx.Commit(); err != nil {
			log.Println("Error committing transaction:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Gallery item updated successfully"})
	}
}

func (gc GalleryController) DeleteGalleryItem(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.StrToInt(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid gallery item id."})
			return
		}

		// Child images go with the parent via ON DELETE CASCADE.
		result, err := db.Exec("DELETE FROM gallery_items WHERE id = ?", id)
		if err != nil {
			log.Println("SQL Delete Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: err.Error()})
			return
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Gallery item not found"})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Gallery item deleted successfully"})
	}
}
