package models

// Registration status constants. Approved and Rejected are terminal:
// the workflow refuses any further transition out of them.
const (
	RegistrationStatusPending  = "Pending"
	RegistrationStatusApproved = "Approved"
	RegistrationStatusRejected = "Rejected"
)

// RegistrationDocument is a document attached to a registration.
type RegistrationDocument struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Registration represents a membership application moving through the
// approval workflow. The Type field is free text from the intake form;
// only the literal value "Expert" affects the role of the member created
// on approval.
type Registration struct {
	ID          string                 `json:"id" yaml:"id"`
	Name        string                 `json:"name" yaml:"name" validate:"required"`
	Email       string                 `json:"email" yaml:"email" validate:"required,email"`
	Type        string                 `json:"type" yaml:"type"`
	AppliedDate string                 `json:"appliedDate" yaml:"appliedDate"`
	Status      string                 `json:"status" yaml:"status"`
	Documents   []RegistrationDocument `json:"documents,omitempty" yaml:"documents,omitempty"`
	Notes       string                 `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// IsTerminal reports whether the registration has reached a state from
// which no workflow transition is defined.
func (r *Registration) IsTerminal() bool {
	return r.Status == RegistrationStatusApproved ||
		r.Status == RegistrationStatusRejected
}

// MemberRole returns the member role a registration of this type produces
// when approved.
func (r *Registration) MemberRole() string {
	if r.Type == MemberRoleExpert {
		return MemberRoleExpert
	}
	return MemberRoleInvestor
}
