package dto

type UpdateInput struct {
	ConceptName string
	Level       int
}

type UpdateOutput struct {
	Message string
}
