package main

import (
	"log"
	"net/http"
	"os"

	"school-portal/controllers"
	"school-portal/driver"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	if os.Getenv("SECRET") == "" {
		log.Fatal("SECRET variable is not set")
	}

	db := driver.ConnectDB()
	defer db.Close()

	controller := controllers.Controller{}
	noticeController := controllers.NoticeController{}
	facultyController := controllers.FacultyController{}
	galleryController := controllers.GalleryController{}
	achievementController := controllers.AchievementController{}
	topperController := controllers.TopperController{}

	router := mux.NewRouter()

	router.HandleFunc("/api/auth/login", controller.Login(db)).Methods("POST")
	router.HandleFunc("/api/auth/seed", controller.SeedAdmin(db)).Methods("POST")
	router.HandleFunc("/api/auth/verify", controller.TokenVerifyMiddleware(controller.VerifySession())).Methods("GET")

	router.HandleFunc("/api/notices", noticeController.GetNotices(db)).Methods("GET")
	router.HandleFunc("/api/notices", controller.TokenVerifyMiddleware(noticeController.AddNotice(db))).Methods("POST")
	router.HandleFunc("/api/notices/{id}", controller.TokenVerifyMiddleware(noticeController.UpdateNotice(db))).Methods("PUT")
	router.HandleFunc("/api/notices/{id}", controller.TokenVerifyMiddleware(noticeController.DeleteNotice(db))).Methods("DELETE")

	router.HandleFunc("/api/faculty/teachers", facultyController.GetTeachers(db)).Methods("GET")
	router.HandleFunc("/api/faculty/teachers", controller.TokenVerifyMiddleware(facultyController.AddTeacher(db))).Methods("POST")
	router.HandleFunc("/api/faculty/teachers/{id}", controller.TokenVerifyMiddleware(facultyController.UpdateTeacher(db))).Methods("PUT")
	router.HandleFunc("/api/faculty/teachers/{id}", controller.TokenVerifyMiddleware(facultyController.DeleteTeacher(db))).Methods("DELETE")

	router.HandleFunc("/api/faculty/non-teaching", facultyController.GetNonTeaching(db)).Methods("GET")
	router.HandleFunc("/api/faculty/non-teaching", controller.TokenVerifyMiddleware(facultyController.AddNonTeaching(db))).Methods("POST")
	router.HandleFunc("/api/faculty/non-teaching/{id}", controller.TokenVerifyMiddleware(facultyController.UpdateNonTeaching(db))).Methods("PUT")
	router.HandleFunc("/api/faculty/non-teaching/{id}", controller.TokenVerifyMiddleware(facultyController.DeleteNonTeaching(db))).Methods("DELETE")

	router.HandleFunc("/api/gallery", galleryController.GetGalleryItems(db)).Methods("GET")
	router.HandleFunc("/api/gallery", controller.TokenVerifyMiddleware(galleryController.CreateGalleryItem(db))).Methods("POST")
	router.HandleFunc("/api/gallery/{id}", controller.TokenVerifyMiddleware(galleryController.UpdateGalleryItem(db))).Methods("PUT")
	router.HandleFunc("/api/gallery/{id}", controller.TokenVerifyMiddleware(galleryController.DeleteGalleryItem(db))).Methods("DELETE")

	router.HandleFunc("/api/achievements", achievementController.GetAchievements(db)).Methods("GET")
	router.HandleFunc("/api/achievements", controller.TokenVerifyMiddleware(achievementController.AddAchievement(db))).Methods("POST")
	router.HandleFunc("/api/achievements/{id}", controller.TokenVerifyMiddleware(achievementController.UpdateAchievement(db))).Methods("PUT")
	router.HandleFunc("/api/achievements/{id}", controller.TokenVerifyMiddleware(achievementController.DeleteAchievement(db))).Methods("DELETE")

	router.HandleFunc("/api/toppers", topperController.GetToppers(db)).Methods("GET")
	router.HandleFunc("/api/toppers", controller.TokenVerifyMiddleware(topperController.AddTopper(db))).Methods("POST")
	router.HandleFunc("/api/toppers/{id}", controller.TokenVerifyMiddleware(topperController.UpdateTopper(db))).Methods("PUT")
	router.HandleFunc("/api/toppers/{id}", controller.TokenVerifyMiddleware(topperController.DeleteTopper(db))).Methods("DELETE")

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(router)

	handler := gorillaHandlers.RecoveryHandler()(gorillaHandlers.LoggingHandler(os.Stdout, corsHandler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("Server started on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
