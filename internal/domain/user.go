package domain

// User is an account that can own todos. Passwords are stored and
// compared in plaintext, inherited from the system this one replaces;
// hashing would change observable login behavior and is tracked as an
// open item rather than fixed here.
type User struct {
	ID          int    `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	Password    string `json:"-" db:"password"`
	IsSuperUser bool   `json:"isSuperUser" db:"is_super_user"`
}
