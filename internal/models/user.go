// Package models defines the persisted data types of the application:
// user identities, scan records, and the snapshot DTOs written to durable
// storage.
package models

// User is a registered user's profile data. ID and Email are immutable
// after creation; the remaining fields change through profile updates.
// Passwords are never part of this type.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ProfileUpdate carries a partial set of mutable profile fields.
// Nil means "leave unchanged". Email is deliberately absent: it cannot
// be changed after registration.
type ProfileUpdate struct {
	Name      *string
	Phone     *string
	BirthDate *string
	AvatarURL *string
}

// Apply returns a copy of u with the non-nil fields of upd merged in.
func (u User) Apply(upd ProfileUpdate) User {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.BirthDate != nil {
		u.BirthDate = *upd.BirthDate
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}
	return u
}
