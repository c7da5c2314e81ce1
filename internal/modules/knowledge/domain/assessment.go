package domain

// Levels follow the backend's 1..5 self-assessment scale.
const (
	MinLevel = 1
	MaxLevel = 5
)

// Assessment is a request payload, never persisted client-side.
type Assessment struct {
	ConceptName string
	Level       int
}
