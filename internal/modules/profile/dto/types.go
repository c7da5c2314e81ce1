package dto

type ProfileOutput struct {
	ID                    int
	FirstName             string
	LastName              string
	Email                 string
	PreferredContentTypes []string
	TimeAvailability      string
	DifficultyPreference  string
}

// UpdateInput carries only the fields to change; zero values are left
// untouched server-side.
type UpdateInput struct {
	FirstName             string
	LastName              string
	PreferredContentTypes []string
	TimeAvailability      string
	DifficultyPreference  string
}

type UpdateOutput struct {
	Message string
}

type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

type ChangePasswordOutput struct {
	Message string
}
