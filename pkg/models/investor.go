package models

// Investor status includes Pending in addition to the shared
// Active/Inactive pair.
const InvestorStatusPending = "Pending"

// Investor represents an investing entity (fund, angel, institution).
type Investor struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name" validate:"required"`
	Type          string `json:"type" yaml:"type" validate:"required"`
	PortfolioSize string `json:"portfolioSize" yaml:"portfolioSize"`
	Status        string `json:"status" yaml:"status"`
	JoinedDate    string `json:"joinedDate" yaml:"joinedDate"`
}
