package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"school-portal/models"
	"school-portal/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 5 * time.Hour

type Controller struct{}

var validate = validator.New()

func (c Controller) Login(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		var error models.Error

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			error.Message = "Invalid request body."
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		if err := validate.Struct(req); err != nil {
			error.Message = "A valid email and a password are required."
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		var user models.User
		var hashedPassword string
		err := db.QueryRow("SELECT id, email, password, role FROM users WHERE email = ?", req.Email).
			Scan(&user.ID, &user.Email, &hashedPassword, &user.Role)
		if err == sql.ErrNoRows {
			// Same response as a password mismatch so callers cannot probe
			// which emails exist.
			error.Message = "Invalid Credentials"
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}
		if err != nil {
			log.Printf("Error querying user: %v", err)
			error.Message = "Server Error"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
			error.Message = "Invalid Credentials"
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		if os.Getenv("SECRET") == "" {
			log.Println("SECRET is missing from the environment")
			error.Message = "Server configuration error"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		token, err := utils.GenerateToken(user, tokenLifetime)
		if err != nil {
			log.Printf("Error signing token: %v", err)
			error.Message = "Server Error"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		utils.ResponseJSON(w, http.StatusOK, models.LoginResponse{Token: token, Role: user.Role})
	}
}

// SeedAdmin provisions the first admin account. The route is only wired when
// SEED_ENABLED=true so it cannot stay open after setup.
func (c Controller) SeedAdmin(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		var error models.Error

		if os.Getenv("SEED_ENABLED") != "true" {
			error.Message = "Seeding is disabled."
			utils.RespondWithError(w, http.StatusForbidden, error)
			return
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			error.Message = "Invalid request body."
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		if err := validate.Struct(req); err != nil {
			error.Message = "A valid email and a password are required."
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		var existingID int
		err := db.QueryRow("SELECT id FROM users WHERE email = ?", req.Email).Scan(&existingID)
		if err == nil {
			error.Message = "User already exists"
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		} else if err != sql.ErrNoRows {
			log.Printf("Error checking existing user: %v", err)
			error.Message = "Server Error"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			error.Message = "Server Error"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		_, err = db.Exec("INSERT INTO users (email, password, role) VALUES (?, ?, ?)", req.Email, hash, "admin")
		if err != nil {
			log.Printf("Error inserting admin user: %v", err)
			error.Message = "Server Error"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Admin created successfully"})
	}
}

// TokenVerifyMiddleware gates every mutating route. Any signature or expiry
// failure is a 401; a valid token without the admin role is a 403.
func (c Controller) TokenVerifyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var errorObject models.Error

		_, role, err := utils.VerifyToken(r)
		if err != nil {
			errorObject.Message = err.Error()
			utils.RespondWithError(w, http.StatusUnauthorized, errorObject)
			return
		}

		if role != "admin" {
			errorObject.Message = "Admin access required."
			utils.RespondWithError(w, http.StatusForbidden, errorObject)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// VerifySession is a cheap token check the admin dashboard calls on load.
func (c Controller) VerifySession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusOK, map[string]string{"msg": "Authorized"})
	}
}
