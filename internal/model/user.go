package model

// User represents an account record as stored in the `users` table.
// Users are created by registration and looked up either by email
// (login) or by id (hydrating an authenticated session).
//
// Fields:
//
//	ID       – primary key identifier of the user.
//	Name     – display name.
//	Email    – unique email address.
//	Password – bcrypt hash of the password. Never serialized.
type User struct {
	ID       int64  `db:"id" json:"id"`       // users.id
	Name     string `db:"name" json:"name"`   // users.name
	Email    string `db:"email" json:"email"` // users.email
	Password string `db:"password" json:"-"`  // users.password (hash)
}

// NewUser carries the values inserted by account registration. Password
// must already be hashed by the caller.
type NewUser struct {
	Name     string
	Email    string
	Password string
}
