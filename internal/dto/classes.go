package dto

// CreateClassRequest is submitted by instructors; new classes always start pending.
type CreateClassRequest struct {
	ClassName      string  `json:"class_name"`
	Image          *string `json:"image,omitempty"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"available_seats"`
}

// UpdateClassRequest captures instructor edits. Any edit resubmits the class
// for review.
type UpdateClassRequest struct {
	ClassName      *string  `json:"class_name,omitempty"`
	Image          *string  `json:"image,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	AvailableSeats *int     `json:"available_seats,omitempty"`
}

// ChangeClassStatusRequest is the admin approval/denial payload.
type ChangeClassStatusRequest struct {
	Status string `json:"status"`
}
