package models

// AdminProfile is the singleton display profile of the dashboard operator.
// It is cosmetic only and carries no access-control meaning.
type AdminProfile struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Role  string `json:"role" yaml:"role" validate:"required"`
	Image string `json:"image" yaml:"image"`
}
