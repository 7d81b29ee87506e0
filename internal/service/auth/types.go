package auth

// credentials is the /auth/login request body.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenPairWire is returned by /auth/login and /auth/refresh.
type tokenPairWire struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         userWire `json:"user"`
}

// userWire is the upstream user record.
type userWire struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}

// refreshRequest is the /auth/refresh request body.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// forgotRequest is the /auth/forgot-password request body.
type forgotRequest struct {
	Email string `json:"email"`
}

// resetRequest is the /auth/reset-password request body.
type resetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
