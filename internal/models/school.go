package models

// School represents a school row.
type School struct {
	SchoolID string `db:"school_id"`
	Name     string `db:"name"`
	Address  string `db:"address"` // Nullable
	AuditFields
	Revocation
}
