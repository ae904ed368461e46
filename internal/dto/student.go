package dto

import (
	"time"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// CreateStudentRequest defines the data needed to enroll a student.
type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	SchoolID string `json:"schoolID" binding:"required,uuid"`
}

// UpdateStudentRequest defines the data allowed for updating a student.
type UpdateStudentRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// StudentResponse defines the data returned for a student.
type StudentResponse struct {
	StudentID string     `json:"studentID"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	SchoolID  string     `json:"schoolID"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

// ToStudentResponse converts a domain.Student to StudentResponse.
func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID: s.StudentID,
		Name:      s.Name,
		Email:     s.Email,
		SchoolID:  s.SchoolID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		RevokedAt: s.RevokedAt,
	}
}

// ToListStudentResponse converts a slice of domain.Student to responses.
func ToListStudentResponse(students []domain.Student) []StudentResponse {
	res := make([]StudentResponse, len(students))
	for i := range students {
		res[i] = ToStudentResponse(&students[i])
	}
	return res
}

// ListStudentsParams defines query parameters for listing students.
type ListStudentsParams struct {
	Limit    int    `form:"limit,default=100"`
	Offset   int    `form:"offset,default=0"`
	SchoolID string `form:"schoolID" binding:"omitempty,uuid"`
}
