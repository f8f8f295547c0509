package entities

// User represents a user entity in the database
type User struct {
	ID        string  `json:"id"` // UUID
	Email     string  `json:"email"`
	Password  string  `json:"password"` // Stored and returned verbatim
	Name      string  `json:"name"`
	SessionID *string `json:"sessionId,omitempty"` // Pointer allows nil (no session issued yet)
}
