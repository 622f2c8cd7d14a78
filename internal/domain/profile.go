package domain

import "time"

// Role is the closed set of actor roles. A profile holds exactly one role at
// a time; only an admin may change it.
type Role string

const (
	RoleReader Role = "reader"
	RoleWriter Role = "writer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// ValidRoles contains all valid profile roles.
var ValidRoles = []Role{RoleReader, RoleWriter, RoleEditor, RoleAdmin}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleWriter, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// CanReview reports whether the role may approve, reject, publish or archive.
func (r Role) CanReview() bool {
	return r == RoleEditor || r == RoleAdmin
}

// CanWrite reports whether the role may author articles.
func (r Role) CanWrite() bool {
	return r == RoleWriter || r == RoleEditor || r == RoleAdmin
}

// Profile represents an actor in the system. Its ID matches the identity
// provider subject id.
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	Bio          *string   `json:"bio,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Active       bool      `json:"is_active"`
	Verified     bool      `json:"is_verified"`
	MFAEnabled   bool      `json:"mfa_enabled"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated caller of a workflow or permission-gate
// operation. It is always passed explicitly; nothing reads ambient session
// state.
type Actor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	MFAEnabled bool   `json:"mfa_enabled"`
}

// ActorFromProfile builds the actor view of a profile.
func ActorFromProfile(p *Profile) Actor {
	return Actor{
		ID:         p.ID,
		Name:       p.FullName,
		Email:      p.Email,
		Role:       p.Role,
		MFAEnabled: p.MFAEnabled,
	}
}
