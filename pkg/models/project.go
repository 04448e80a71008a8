package models

// Project status constants.
const (
	ProjectStatusOngoing   = "Ongoing"
	ProjectStatusCompleted = "Completed"
	ProjectStatusPlanned   = "Planned"
)

// Project represents an investment project.
type Project struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name" validate:"required"`
	Category  string `json:"category" yaml:"category" validate:"required"`
	Budget    string `json:"budget" yaml:"budget"`
	Status    string `json:"status" yaml:"status"`
	StartDate string `json:"startDate" yaml:"startDate"`
}
