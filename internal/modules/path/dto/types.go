package dto

type GenerateInput struct {
	TargetConcept string
}

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

type StepOutput struct {
	Concept   string
	Resources []ResourceOutput
}

type GenerateOutput struct {
	TargetConcept string
	Message       string
	Steps         []StepOutput
}
