package models

// ApplicationRequest is the raw submission body. Required-field presence is
// checked by the ingestion service, not by binding tags, so a missing field
// produces the service's own validation error instead of a binding error.
type ApplicationRequest struct {
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Mobile         string  `json:"mobile"`
	PAN            string  `json:"pan"`
	Aadhaar        string  `json:"aadhar"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	LoanAmount     float64 `json:"loanAmount"`
	EmploymentType string  `json:"employmentType"`
	LoanPurpose    string  `json:"loanPurpose"`
	ExistingLoans  bool    `json:"existingLoans"`
}
