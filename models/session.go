package models

// Session is the logged-in identity of this installation: a bearer token and
// the profile it belongs to.
type Session struct {
	Token string
	User  UserProfile
}

// IsEmpty reports whether the session carries no credentials.
func (s Session) IsEmpty() bool {
	return s.Token == ""
}
