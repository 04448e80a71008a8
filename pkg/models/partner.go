package models

// Partner represents a strategic or financial partner organization.
type Partner struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name" validate:"required"`
	Type            string `json:"type" yaml:"type" validate:"required"`
	Website         string `json:"website" yaml:"website"`
	Status          string `json:"status" yaml:"status"`
	PartnershipDate string `json:"partnershipDate" yaml:"partnershipDate"`
}
