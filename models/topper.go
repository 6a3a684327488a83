package models

type Topper struct {
	ID       int    `json:"id"`
	Standard string `json:"std"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Group    string `json:"group"`
	Score    int    `json:"score"`
	OutOf    int    `json:"outOf"`
	Rank     int    `json:"rank"`
}
