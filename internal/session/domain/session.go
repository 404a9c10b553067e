package domain

import "strings"

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleUser   = "USER"
)

type Session struct {
	ID                     int64  `json:"id"`
	Username               string `json:"username"`
	Email                  string `json:"email"`
	Role                   string `json:"role,omitempty"`
	SubscriptionType       string `json:"subscriptionType,omitempty"`
	SubscriptionExpiration string `json:"subscriptionExpiration,omitempty"`
	AvatarURL              string `json:"avatarUrl,omitempty"`
	FirstName              string `json:"firstName,omitempty"`
	LastName               string `json:"lastName,omitempty"`
	DateOfBirth            string `json:"dateOfBirth,omitempty"`
	CreatedAt              string `json:"createdAt"`
	UpdatedAt              string `json:"updatedAt"`
}

func (s Session) IsAdmin() bool { return strings.EqualFold(s.Role, RoleAdmin) }

func (s Session) CanPostNews() bool {
	return strings.EqualFold(s.Role, RoleAdmin) || strings.EqualFold(s.Role, RoleEditor)
}

// Patch is a partial profile update; nil fields are left untouched. Role is not
// patchable: it only arrives with a login or register response.
type Patch struct {
	Username               *string `json:"username,omitempty"`
	Email                  *string `json:"email,omitempty"`
	SubscriptionType       *string `json:"subscriptionType,omitempty"`
	SubscriptionExpiration *string `json:"subscriptionExpiration,omitempty"`
	AvatarURL              *string `json:"avatarUrl,omitempty"`
	FirstName              *string `json:"firstName,omitempty"`
	LastName               *string `json:"lastName,omitempty"`
	DateOfBirth            *string `json:"dateOfBirth,omitempty"`
	UpdatedAt              *string `json:"updatedAt,omitempty"`
}

func (s Session) Apply(p Patch) Session {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.Username, p.Username)
	set(&s.Email, p.Email)
	set(&s.SubscriptionType, p.SubscriptionType)
	set(&s.SubscriptionExpiration, p.SubscriptionExpiration)
	set(&s.AvatarURL, p.AvatarURL)
	set(&s.FirstName, p.FirstName)
	set(&s.LastName, p.LastName)
	set(&s.DateOfBirth, p.DateOfBirth)
	set(&s.UpdatedAt, p.UpdatedAt)
	return s
}

// State is what subscribers observe. Session is nil exactly when Token is empty.
type State struct {
	Session *Session
	Token   string
}

func (s State) Authenticated() bool { return s.Token != "" && s.Session != nil }

// AuthResponse is the payload of the login and register endpoints.
type AuthResponse struct {
	Token                  string  `json:"token"`
	UserID                 int64   `json:"userId"`
	Username               string  `json:"username"`
	Email                  string  `json:"email"`
	Role                   string  `json:"role"`
	AvatarURL              string  `json:"avatarUrl"`
	FirstName              string  `json:"firstName"`
	LastName               string  `json:"lastName"`
	DateOfBirth            string  `json:"dateOfBirth"`
	SubscriptionType       string  `json:"subscriptionType"`
	SubscriptionExpiration string  `json:"subscriptionExpiration"`
	CreatedAt              *string `json:"createdAt"`
	UpdatedAt              *string `json:"updatedAt"`
}

// Persisted is the raw durable form: the token and the serialized session, stored under separate keys.
type Persisted struct {
	Token   string
	Session []byte
}
