package models

import (
	"time"
)

// User represents a user record in the usuarios table.
type User struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	Username     string    `json:"username" db:"usuario"`          // Unique username
	PasswordHash string    `json:"-" db:"password"`                // bcrypt hash, never the plaintext
	Country      string    `json:"country" db:"pais"`              // Country of residence
	Goals        []string  `json:"goals" db:"-"`                   // Ordered goals from the objetivos table
	CreatedAt    time.Time `json:"created_at" db:"fecha_registro"` // Registration timestamp
}
