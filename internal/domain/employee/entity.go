package employee

import (
	"time"
)

type Employee struct {
	ID            string
	EmployeeCode  string
	FullName      string
	Mobile        string
	Email         *string
	AadhaarNumber *string
	BankName      *string
	AccountNumber *string
	IFSCCode      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NationalizedBanks maps bank short codes to display names for the bank
// details on an employee profile.
var NationalizedBanks = map[string]string{
	"SBI":    "State Bank of India",
	"PNB":    "Punjab National Bank",
	"BOI":    "Bank of India",
	"CBI":    "Central Bank of India",
	"BOB":    "Bank of Baroda",
	"UBI":    "Union Bank of India",
	"CANARA": "Canara Bank",
	"IOB":    "Indian Overseas Bank",
	"IDBI":   "IDBI Bank",
	"INDIAN": "Indian Bank",
}
