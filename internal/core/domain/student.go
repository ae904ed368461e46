package domain

// Student represents a billable student enrolled at a school.
type Student struct {
	StudentID string `json:"studentID"` // Primary Key (UUID)
	Name      string `json:"name"`
	Email     string `json:"email"`    // Nullable
	SchoolID  string `json:"schoolID"` // FK -> schools.school_id (NON-NULL)
	AuditFields
	Revocation
}
