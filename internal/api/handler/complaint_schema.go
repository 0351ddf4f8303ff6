package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// transitionRequest is the body of PUT /complaints/:id.
type transitionRequest struct {
	Status  string `json:"status"  validate:"required"`
	Comment string `json:"comment" validate:"required,max=300"`
}

// Complaint creation arrives as multipart/form-data (text fields plus up to
// five image files), so it has no JSON request type; the fields are read
// directly off the form in ComplaintHandler.Create.
