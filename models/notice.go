package models

// Notice is a school announcement with a local-language/English title and body pair.
type Notice struct {
	ID             int    `json:"id"`
	Title          string `json:"title" validate:"required"`
	TitleEng       string `json:"titleEng" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Category       string `json:"category" validate:"required"`
	Priority       string `json:"priority" validate:"required"`
	Description    string `json:"description" validate:"required"`
	DescriptionEng string `json:"descriptionEng" validate:"required"`
	Author         string `json:"author" validate:"required"`
	IsPinned       bool   `json:"isPinned"`
}
