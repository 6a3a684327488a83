package driver

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

func dsnFromEnv() string {
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "school_portal"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4", user, password, host, port, name)
}

// ConnectDB opens the MySQL pool described by the DB_* environment
// variables and verifies the connection before returning it.
func ConnectDB() *sql.DB {
	db, err := sql.Open("mysql", dsnFromEnv())
	if err != nil {
		log.Fatal("Error opening database connection:", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	if err := db.Ping(); err != nil {
		log.Fatal("Could not connect to the database:", err)
	}
	return db
}
