package dto

// RegisterRequest carries new staff credentials in the request body.
// Credentials never travel in the URL.
type RegisterRequest struct {
	NamaStaff string `json:"nama_staff" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Jabatan   string `json:"jabatan" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// VerifyResponse mirrors the legacy /verify payload: fresh profile fields
// plus a re-minted token.
type VerifyResponse struct {
	NamaStaff string `json:"nama_staff"`
	Jabatan   string `json:"jabatan"`
	Image     string `json:"image"`
	Token     string `json:"token"`
}
