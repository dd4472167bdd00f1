package domain

import "time"

// Account is a registered identity. Records are immutable after creation;
// there is no profile edit and no account deletion.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id PHC encoded
	CreatedAt    time.Time
}
