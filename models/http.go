package models

// LoginRequest is the JSON body accepted by POST /api/usuarios/login.
// Both fields are required; unknown fields are rejected.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
}

// LoginResponse is the JSON body returned by the login endpoint.
//
// By contract the endpoint answers HTTP 200 on invalid credentials with
// Success set to false and every other field empty, so the response never
// reveals which factor failed.
type LoginResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token,omitempty"`
	ID          int64  `json:"id,omitempty"`
	Usuario     string `json:"usuario,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
}

// ErrorResponse is the uniform error body for 4xx/5xx answers.
// Missing lists the absent required fields on validation failures.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
	Details string   `json:"details,omitempty"`
}

// MessageResponse is the body returned by successful deletes and other
// operations that have no row to render.
type MessageResponse struct {
	Message string `json:"message"`
}
