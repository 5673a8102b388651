package domain

import "github.com/google/uuid"

type Provider string

const (
	ProviderGoogle Provider = "google"
)

// ExternalIdentity is what the identity provider tells us about the person
// who just completed the consent screen.
type ExternalIdentity struct {
	Provider Provider
	Subject  string
	Name     string
	Email    string
	Picture  string
}

// UserSession is the resolved owner of a presented access token.
type UserSession struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture,omitempty"`
	Timetable Grid      `json:"timetable"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
