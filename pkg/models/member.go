// Package models contains domain types for the InvestPlus admin engine.
package models

// Member represents a platform member shown in the members directory.
// Members are created manually or materialized by an approved registration.
type Member struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name" validate:"required"`
	Email           string  `json:"email" yaml:"email" validate:"required,email"`
	Role            string  `json:"role" yaml:"role"`
	Status          string  `json:"status" yaml:"status"`
	JoinedDate      string  `json:"joinedDate" yaml:"joinedDate"`
	TotalInvestment float64 `json:"totalInvestment,omitempty" yaml:"totalInvestment,omitempty"`
}

// Member role constants.
const (
	MemberRoleInvestor = "Investor"
	MemberRoleExpert   = "Expert"
	MemberRoleAdmin    = "Admin"
	MemberRoleEmployee = "Employee"
)

// Member status constants, shared by experts and partners.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// ValidMemberRoles contains all valid member role values.
var ValidMemberRoles = []string{
	MemberRoleInvestor,
	MemberRoleExpert,
	MemberRoleAdmin,
	MemberRoleEmployee,
}

// IsValidMemberRole checks if the given role is valid.
func IsValidMemberRole(role string) bool {
	for _, r := range ValidMemberRoles {
		if r == role {
			return true
		}
	}
	return false
}
