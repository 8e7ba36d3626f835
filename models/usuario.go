package models

// Usuario represents an account entity used for authentication.
// It maps the fixed columns of the "usuarios" table; the remaining audited
// columns travel through the generic resource engine as opaque values.
// Clave must never hold plaintext outside the login request boundary.
type Usuario struct {
	// ID is the internal surrogate identifier assigned by the database.
	ID int64 `json:"id"`

	// Usuario is the unique login name.
	Usuario string `json:"usuario"`

	// Descripcion is a human-readable label shown after login.
	Descripcion string `json:"descripcion"`

	// Clave stores the bcrypt hash of the credential.
	// It is never serialized back to clients.
	Clave string `json:"-"`

	// Activo is the logical-presence flag shared by every audited row.
	Activo bool `json:"activo"`
}

// TableName returns the database table backing the Usuario model.
func (u Usuario) TableName() string {
	return "usuarios"
}
