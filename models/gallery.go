package models

// GalleryItem owns its child images; deleting the item cascades to them
// at the database layer.
type GalleryItem struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Date             string   `json:"date"`
	ShortDescription string   `json:"shortDescription"`
	Thumbnail        string   `json:"thumbnail"`
	FullDescription  string   `json:"fullDescription"`
	Images           []string `json:"images"`
}
