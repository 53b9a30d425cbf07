// Package models defines the records TaskFlow keeps in the local store.
package models

// User is a registered account. Email is the identity; it is stored
// normalized (trimmed, lower-cased) for new registrations.
type User struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	// Password holds an argon2id hash, or the plain password for records
	// written before hashing was introduced.
	Password string `json:"password"`
}
