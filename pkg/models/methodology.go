package models

// MethodologyStep is one ordered step of the investment methodology.
type MethodologyStep struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
	Order       int    `json:"order" yaml:"order"`
}
