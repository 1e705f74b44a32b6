package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required"`
	Role     string `json:"role"      validate:"required,oneof=system_admin manager accountant"`
	BranchID int    `json:"branch_id" validate:"gte=0"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	BranchID int    `json:"branch_id"`
}

type updateUserRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email"`
	Password *string `json:"password"  validate:"omitempty,min=1"`
	Role     *string `json:"role"      validate:"omitempty,oneof=system_admin manager accountant"`
	BranchID *int    `json:"branch_id" validate:"omitempty,gte=0"`
}

type deletedResponse struct {
	Status string `json:"status"`
}
