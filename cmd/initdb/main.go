package main

import (
	"log"

	"school-portal/driver"

	"github.com/joho/godotenv"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT PRIMARY KEY AUTO_INCREMENT,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) DEFAULT 'user',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS notices (
		id INT PRIMARY KEY AUTO_INCREMENT,
		title VARCHAR(255) NOT NULL,
		titleEng VARCHAR(255) NOT NULL,
		date DATE NOT NULL,
		category VARCHAR(100) NOT NULL,
		priority VARCHAR(20) NOT NULL,
		description TEXT NOT NULL,
		descriptionEng TEXT NOT NULL,
		author VARCHAR(150) NOT NULL,
		isPinned BOOLEAN DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS faculty_teachers (
		id INT PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(150) NOT NULL,
		gender VARCHAR(10) NOT NULL,
		qual VARCHAR(150) NOT NULL,
		role VARCHAR(50) NOT NULL,
		subjects JSON NOT NULL,
		class VARCHAR(50) NOT NULL,
		exp DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS faculty_non_teaching (
		id INT PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(150) NOT NULL,
		gender VARCHAR(10) NOT NULL,
		role VARCHAR(100) NOT NULL,
		qual VARCHAR(150) NOT NULL,
		exp DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		id INT PRIMARY KEY AUTO_INCREMENT,
		title VARCHAR(255) NOT NULL,
		date DATE NOT NULL,
		year YEAR NOT NULL,
		description TEXT NOT NULL,
		images JSON NOT NULL,
		category VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS topper_students (
		id INT PRIMARY KEY AUTO_INCREMENT,
		std VARCHAR(10) NOT NULL,
		name VARCHAR(100) NOT NULL,
		image VARCHAR(500) NOT NULL,
		` + "`group`" + ` VARCHAR(200) NOT NULL,
		score INT NOT NULL,
		outOf INT NOT NULL,
		` + "`rank`" + ` INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_items (
		id INT PRIMARY KEY AUTO_INCREMENT,
		title VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL,
		date DATE NOT NULL,
		shortDescription TEXT NOT NULL,
		thumbnail VARCHAR(500) NOT NULL,
		fullDescription TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_images (
		id INT PRIMARY KEY AUTO_INCREMENT,
		gallery_item_id INT NOT NULL,
		image VARCHAR(500) NOT NULL,
		FOREIGN KEY (gallery_item_id) REFERENCES gallery_items(id) ON DELETE CASCADE
	)`,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	db := driver.ConnectDB()
	defer db.Close()

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			log.Fatal("Error creating table: ", err)
		}
	}

	log.Println("Database tables initialized successfully")
}
