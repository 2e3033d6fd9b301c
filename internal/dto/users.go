package dto

// ChangeRoleRequest is used by administrators to assign a role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// UserResponse represents user data returned to clients.
type UserResponse struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Phone           *string `json:"phone,omitempty"`
	Role            string  `json:"role"`
	TotalStudents   int     `json:"total_students"`
	NumberOfClasses int     `json:"number_of_classes"`
}

// RoleResponse is the self-service role lookup payload.
type RoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
