package dto

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	UserID  int
	Email   string
	Message string
}

type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type SignupOutput struct {
	Message string
}

type MessageOutput struct {
	Message string
}

type SessionOutput struct {
	Token  string
	UserID int
	Email  string
}
