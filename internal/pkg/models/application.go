package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Decision is the compacted subset of the scoring response that gets
// persisted. Anything else the model service returns is dropped.
type Decision struct {
	PredictedClass string             `bson:"predicted_class,omitempty" json:"predicted_class,omitempty"`
	Band           string             `bson:"band,omitempty" json:"band,omitempty"`
	Probabilities  map[string]float64 `bson:"probabilities,omitempty" json:"probabilities,omitempty"`
	Explanation    []string           `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

type Application struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	Mobile         string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	PAN            string             `bson:"pan" json:"pan"`
	Aadhaar        string             `bson:"aadhar" json:"aadhar"`
	MonthlyIncome  float64            `bson:"monthlyIncome" json:"monthlyIncome"`
	LoanAmount     float64            `bson:"loanAmount" json:"loanAmount"`
	EmploymentType string             `bson:"employmentType,omitempty" json:"employmentType,omitempty"`
	LoanPurpose    string             `bson:"loanPurpose,omitempty" json:"loanPurpose,omitempty"`
	ExistingLoans  bool               `bson:"existingLoans,omitempty" json:"existingLoans,omitempty"`
	Decision       *Decision          `bson:"decision,omitempty" json:"decision,omitempty"`
	ScoreLatencyMs *int64             `bson:"scoreLatencyMs,omitempty" json:"scoreLatencyMs,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// ApplicationSummary is the projection served to the admin listing.
type ApplicationSummary struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	FullName      string             `bson:"fullName" json:"fullName"`
	Email         string             `bson:"email" json:"email"`
	MonthlyIncome float64            `bson:"monthlyIncome" json:"monthlyIncome"`
	LoanAmount    float64            `bson:"loanAmount" json:"loanAmount"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	Decision      *Decision          `bson:"decision,omitempty" json:"decision,omitempty"`
}
