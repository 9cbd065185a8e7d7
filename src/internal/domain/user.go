package domain

import "time"

type User struct {
	UID          string
	LoginID      string
	PasswordHash string
	Name         string
	Nickname     string
	PhoneNumber  string
	Email        string
	CreatedAt    time.Time
}
