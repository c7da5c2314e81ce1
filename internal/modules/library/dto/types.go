package dto

type ResourceOutput struct {
	ID                   int
	Title                string
	URL                  string
	ResourceType         string
	Source               string
	Difficulty           string
	EstimatedTimeMinutes int
	Description          string
}

type ContributeInput struct {
	URL string
}

type ContributeOutput struct {
	Message string
}
