package domain

import "github.com/google/uuid"

type Users struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	GoogleID    string    `db:"google_id"`
	Picture     *string   `db:"picture"`
	TokenDigest *string   `db:"token_digest"`
}

type UsersTable struct {
	ID          string
	Name        string
	GoogleID    string
	Picture     string
	TokenDigest string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:          "id",
		Name:        "name",
		GoogleID:    "google_id",
		Picture:     "picture",
		TokenDigest: "token_digest",
	}
}

func (t UsersTable) GetTableName() string {
	return "users"
}
