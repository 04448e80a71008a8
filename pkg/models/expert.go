package models

// Expert represents a domain expert advising the platform.
type Expert struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name" validate:"required"`
	Role           string `json:"role" yaml:"role"`
	Email          string `json:"email" yaml:"email" validate:"required,email"`
	Specialization string `json:"specialization" yaml:"specialization"`
	Status         string `json:"status" yaml:"status"`
	JoinedDate     string `json:"joinedDate" yaml:"joinedDate"`
}
