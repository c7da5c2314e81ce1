package domain

// Resource is one entry of the shared catalog. The client only reads
// these; new entries are appended through the backend's contribution
// endpoint.
type Resource struct {
	ID                   int
	Title                string
	URL                  string
	ResourceType         string
	Source               string
	Difficulty           string
	EstimatedTimeMinutes int
	Description          string
}
