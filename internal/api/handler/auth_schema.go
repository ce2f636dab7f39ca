package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse confirms an outcome without carrying any session material.
// The login response deliberately never echoes the token: it travels only in
// the Set-Cookie header.
type messageResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Phone    string `json:"phone"     validate:"required"`
	Password string `json:"password"  validate:"required,min=6"`
	FullName string `json:"full_name"`
}
