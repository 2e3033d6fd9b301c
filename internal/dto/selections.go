package dto

// AddSelectionRequest adds a class to the caller's cart with a snapshot of the
// class fields at selection time.
type AddSelectionRequest struct {
	ClassID         string  `json:"class_id"`
	ClassName       string  `json:"class_name"`
	Image           *string `json:"image,omitempty"`
	Price           float64 `json:"price"`
	InstructorEmail string  `json:"instructor_email"`
}
