package domain

// User is the authenticated identity returned by the backend on login.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Session pairs the opaque access token with the user it belongs to.
// The pair is all-or-nothing: a session with only one half set is not a
// session.
type Session struct {
	Token string
	User  User
}

func (s Session) Valid() bool {
	return s.Token != "" && s.User.ID != 0 && s.User.Email != ""
}
