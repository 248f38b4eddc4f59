package models

import "time"

// FieldError describes a single invalid form field.
// swagger:model FieldError
type FieldError struct {
	// Form field name
	// example: password
	Field string `json:"field"`

	// Human readable message
	// example: La contraseña debe tener al menos 8 caracteres.
	Message string `json:"message"`
}

// FormView is the view model of a page containing a form.
// swagger:model FormView
type FormView struct {
	// Form identifier
	// example: registro
	Form string `json:"form"`

	// One-shot notice carried over from a previous request
	// example: Sesión cerrada correctamente
	Flash string `json:"flash,omitempty"`

	// General error message
	// example: Usuario o contraseña incorrectos.
	Error string `json:"error,omitempty"`

	// Per field validation errors
	Errors []FieldError `json:"errors,omitempty"`
}

// PanelView is the view model of the user dashboard.
// swagger:model PanelView
type PanelView struct {
	// Username
	// example: ana
	Username string `json:"username"`

	// Country
	// example: CL
	Country string `json:"country"`

	// Goals in the order they were set
	Goals []string `json:"goals"`

	// Registration timestamp
	RegisteredAt time.Time `json:"registered_at"`

	// One-shot notice
	Flash string `json:"flash,omitempty"`
}

// RecommendationView is the view model of a recommendation page.
// swagger:model RecommendationView
type RecommendationView struct {
	// Recommendation topic
	// example: organizacion
	Topic string `json:"topic"`

	// Generated advice, empty until the form is submitted
	Recommendation string `json:"recommendation,omitempty"`

	// Per field validation errors
	Errors []FieldError `json:"errors,omitempty"`

	// General error message
	Error string `json:"error,omitempty"`
}
