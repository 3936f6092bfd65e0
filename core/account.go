package core

// RoleTutor is the only role the system assigns. Every account receives it
// at signup and there is no transition to any other role.
const RoleTutor = "tutor"

// Account represents a registered user.
//
// Email is the primary key: unique across the store, case-sensitive as
// entered, and immutable. The JSON field names match the storage documents
// written by the original browser build, including "password" holding the
// credential digest rather than a plaintext secret.
type Account struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	CredentialDigest string `json:"password"`
	Role             string `json:"role"`
}

// SignUpInput contains the data needed to register a new account
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// AccountPatch describes a partial administrative edit.
//
// Nil fields are left untouched. A non-nil Password is re-hashed before it
// replaces the stored digest.
type AccountPatch struct {
	Name     *string
	Password *string
}
