// Package users holds the user domain: the record types, the in-memory
// store and the service facade over it.
package users

// User is a stored account record. The id is assigned by the store at
// creation time and is never supplied by callers; records are immutable
// once stored.
type User struct {
	ID       string
	Login    string
	Password string // encoded, never plain text
}

// NewUser is the input for creating a user. The password must already be
// encoded by the caller.
type NewUser struct {
	Login    string
	Password string
}
