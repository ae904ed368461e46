package models

// User represents a staff account row.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	AuditFields
	Revocation
}
