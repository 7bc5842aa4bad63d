// Package models defines the persisted entity types of the rental data layer
// and their JSON shapes.
package models

// UserType classifies an account role. It is immutable after registration.
type UserType string

const (
	UserTypeRenter UserType = "renter"
	UserTypeOwner  UserType = "owner"
)

// Valid reports whether t is one of the known roles.
func (t UserType) Valid() bool {
	return t == UserTypeRenter || t == UserTypeOwner
}

// User is the canonical account record as stored in the user collection.
//
// Favorites is the renter-side relation and Properties the owner-side one;
// the role decides which slice is live. The inactive slice stays nil and
// serializes as JSON null, matching the stored shape of the collection.
// Relation ids may reference properties that no longer exist; readers filter
// them out instead of failing.
type User struct {
	ID           int      `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Phone        string   `json:"phone"`
	UserType     UserType `json:"userType"`
	Joined       string   `json:"joined"`
	Favorites    []int    `json:"favorites"`
	Properties   []int    `json:"properties"`
	ProfileImage *string  `json:"profileImage"`
	Bio          string   `json:"bio"`
	Verified     bool     `json:"verified"`
}

// IsOwner reports whether the user lists properties rather than renting.
func (u *User) IsOwner() bool { return u.UserType == UserTypeOwner }

// RedactedUser is the session-safe projection of a User: every field except
// the password. The session layer only ever sees this type, so a password
// cannot reach session storage by construction.
type RedactedUser struct {
	ID           int      `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	UserType     UserType `json:"userType"`
	Joined       string   `json:"joined"`
	Favorites    []int    `json:"favorites"`
	Properties   []int    `json:"properties"`
	ProfileImage *string  `json:"profileImage"`
	Bio          string   `json:"bio"`
	Verified     bool     `json:"verified"`
}

// Redact projects a User onto its session-safe view. Relation slices are
// copied so later repository writes do not alias the session snapshot.
func Redact(u *User) *RedactedUser {
	return &RedactedUser{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		UserType:     u.UserType,
		Joined:       u.Joined,
		Favorites:    cloneInts(u.Favorites),
		Properties:   cloneInts(u.Properties),
		ProfileImage: u.ProfileImage,
		Bio:          u.Bio,
		Verified:     u.Verified,
	}
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}
