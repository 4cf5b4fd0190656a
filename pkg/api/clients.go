package api

// ClientRequest is the body of client create and update calls. Name is
// required; rating defaults to 0 and must stay within [0,5].
type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
	Rating  int    `json:"rating"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Success bool `json:"success"`
}
