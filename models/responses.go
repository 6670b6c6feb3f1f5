package models

// MessageResponse is the generic {"message": ...} envelope used for
// error bodies and simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the body of a successful POST /api/auth/login:
// the signed session token plus the sanitized user record.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileResponse is the body of GET /api/user/profile. The password
// hash is never part of this shape.
type ProfileResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// UpdateProfileResponse is the body of a successful
// POST /api/user/updateProfile.
type UpdateProfileResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}
