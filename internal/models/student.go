package models

// Student represents a student row.
type Student struct {
	StudentID string `db:"student_id"`
	Name      string `db:"name"`
	Email     string `db:"email"` // Nullable
	SchoolID  string `db:"school_id"`
	AuditFields
	Revocation
}
