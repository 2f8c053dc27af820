package models

// User is a registered account. Password holds the bcrypt hash and is
// never serialized into API responses.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}
