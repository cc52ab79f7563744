package handler

// --- Request / Response types ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the public view of a user: never includes the password
// hash or internal timestamps.
type userResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Skills      string `json:"skills"`
	CareerGoals string `json:"careerGoals"`
}

// authResponse carries a user together with a freshly issued bearer token.
type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// updateProfileRequest distinguishes omitted fields (nil, keep the stored
// value) from fields explicitly set to the empty string (intentional clear).
type updateProfileRequest struct {
	Name        *string `json:"name"`
	Skills      *string `json:"skills"`
	CareerGoals *string `json:"careerGoals"`
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}
