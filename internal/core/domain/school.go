package domain

// School represents an institution that bills its students.
type School struct {
	SchoolID string `json:"schoolID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Address  string `json:"address"` // Nullable
	AuditFields
	Revocation
}
