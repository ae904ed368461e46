package models

import "time"

// AuditFields holds the audit timestamps common to all persisted rows.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Revocation holds the shared soft-delete column.
type Revocation struct {
	RevokedAt *time.Time `db:"revoked_at"` // Nullable
}
