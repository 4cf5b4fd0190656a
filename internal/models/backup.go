package models

import "time"

// BackupSnapshot is a full point-in-time export of the dataset. It round-trips
// through JSON with date fields as ISO strings.
type BackupSnapshot struct {
	Clients    []Client  `json:"clients"`
	Jobs       []Job     `json:"jobs"`
	BackupDate time.Time `json:"backupDate"`
}

// CompanySettings is the letterhead configuration used on invoices. It lives
// only in the client's local store and is never synced to the server.
type CompanySettings struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Website         string `json:"website"`
	LogoDataURI     string `json:"logoDataUri"`
	BankName        string `json:"bankName"`
	BankAccount     string `json:"bankAccount"`
	BankCode        string `json:"bankCode"`
	DefaultLanguage string `json:"defaultLanguage"`
	DefaultService  string `json:"defaultService"`
}
