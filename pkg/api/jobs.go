package api

// JobRequest is the body of the job creation call. Date is an ISO timestamp
// or calendar date; price is a pointer so a missing field is distinguishable
// from a free job. Status defaults to "completed".
type JobRequest struct {
	ClientID string   `json:"clientId"`
	Date     string   `json:"date"`
	Price    *float64 `json:"price"`
	Notes    string   `json:"notes"`
	Status   string   `json:"status"`
}

// JobClient is the client summary embedded in job listings.
type JobClient struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// JobResponse is a job joined with its client summary.
type JobResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Date      string    `json:"date"`
	Price     float64   `json:"price"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"createdAt"`
	Client    JobClient `json:"client"`
}
