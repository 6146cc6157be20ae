package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CredentialsInput is bound from the register and login forms.
type CredentialsInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
