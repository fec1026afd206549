package model

// Notebook is one contact entry of the notebook. It is the record that travels between the HTTP
// layer and the notebooks table.
//
// FullName, Phone and Email are required on every write and are validated in this order. The
// remaining fields are optional and stored as NULL when absent.
type Notebook struct {
	Id        int64   `json:"id"         form:"-"          db:"id"`
	FullName  string  `json:"full_name"  form:"full_name"  db:"full_name"  validate:"required"`
	Company   *string `json:"company"    form:"company"    db:"company"`
	Phone     string  `json:"phone"      form:"phone"      db:"phone"      validate:"required"`
	Email     string  `json:"email"      form:"email"      db:"email"      validate:"required"`
	BirthDate *string `json:"birth_date" form:"birth_date" db:"birth_date"`
	Photo     *string `json:"photo"      form:"photo"      db:"photo"`
}

// ErrorResponse is the body of every 4xx and 5xx answer. Details is only filled in when the
// service runs with debug errors enabled.
type ErrorResponse struct {
	Error   string `json:"error" example:"The field 'email' is required."`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the body of a successful delete.
type MessageResponse struct {
	Message string `json:"message" example:"Notebook deleted successfully"`
}
