package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // pharmacist or owner

	// Owner profile.
	PharmacyName string `json:"pharmacy_name,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`

	// Pharmacist profile.
	LicenseNumber   string   `json:"license_number,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
	Specialties     []string `json:"specialties,omitempty"`
	Bio             string   `json:"bio,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token"`
	Role    string `json:"role,omitempty"` // used only when the account does not exist yet
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
