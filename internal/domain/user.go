package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Users struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        *string   `db:"email"`
	PasswordHash *string   `db:"password_hash"`
	Role         string    `db:"role"`
	AuthProvider string    `db:"auth_provider"`
	GoogleID     *string   `db:"google_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type UsersTable struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	AuthProvider string
	GoogleID     string
	CreatedAt    string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:           "id",
		Name:         "name",
		Email:        "email",
		PasswordHash: "password_hash",
		Role:         "role",
		AuthProvider: "auth_provider",
		GoogleID:     "google_id",
		CreatedAt:    "created_at",
	}
}

func (UsersTable) GetTableName() string {
	return "users"
}

// Profile is the aggregated view served on /api/profile
type Profile struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	TotalSolved      int    `json:"totalSolved"`
	TotalSubmissions int    `json:"totalSubmissions"`
}
