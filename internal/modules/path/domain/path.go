package domain

// Resource is one learning resource inside a path step. Read-only on
// the client.
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

// Step is an ordered unit of the generated path.
type Step struct {
	Concept   string
	Resources []Resource
}

// LearningPath is produced by the backend and replaced wholesale on
// every generation; the client never merges paths.
type LearningPath struct {
	TargetConcept string
	Message       string
	Steps         []Step
}
