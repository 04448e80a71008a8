package models

// Achievement is a milestone highlighted on the public about page.
type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Metric      string `json:"metric" yaml:"metric" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
}
