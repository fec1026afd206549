package model

// Notebook is the data structure for a contact entry as seen by clients of the notebook service.
// All fields with the exception of the Id field may be omitted when reading.
type Notebook struct {
	Id        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	Company   *string `json:"company,omitempty"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	BirthDate *string `json:"birth_date,omitempty"`
	Photo     *string `json:"photo,omitempty"`
}

// ErrorResponse is the body of every 4xx and 5xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the body of a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}
