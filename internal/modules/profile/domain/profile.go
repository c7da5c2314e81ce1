package domain

// Profile is the backend's view of the authenticated user, including
// the learning preferences the path generator consumes.
type Profile struct {
	ID                    int
	FirstName             string
	LastName              string
	Email                 string
	PreferredContentTypes []string
	TimeAvailability      string
	DifficultyPreference  string
}
