package models

// Credentials is the body of the register and login calls.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmailUpdate is the body of the update-details call.
type EmailUpdate struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthResponse is returned by the register and login endpoints. The backend
// sends the profile under "userDetails"; older builds used "user".
type AuthResponse struct {
	Token       string       `json:"token"`
	UserDetails *UserProfile `json:"userDetails,omitempty"`
	User        *UserProfile `json:"user,omitempty"`
}

// Profile returns whichever profile field the backend populated.
func (r AuthResponse) Profile() (UserProfile, bool) {
	switch {
	case r.UserDetails != nil:
		return *r.UserDetails, true
	case r.User != nil:
		return *r.User, true
	default:
		return UserProfile{}, false
	}
}

// UpdateDetailsResponse is returned by the update-details endpoint.
type UpdateDetailsResponse struct {
	UserDetails UserProfile `json:"userDetails"`
}
