package models

type Achievement struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
}
