package dto

import (
	"time"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// CreateSchoolRequest defines the data needed to create a new school.
type CreateSchoolRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"` // Optional
}

// UpdateSchoolRequest defines the data allowed for updating a school.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateSchoolRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// SchoolResponse defines the data returned for a school.
type SchoolResponse struct {
	SchoolID  string     `json:"schoolID"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

// ToSchoolResponse converts a domain.School to SchoolResponse.
func ToSchoolResponse(s *domain.School) SchoolResponse {
	return SchoolResponse{
		SchoolID:  s.SchoolID,
		Name:      s.Name,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		RevokedAt: s.RevokedAt,
	}
}

// ToListSchoolResponse converts a slice of domain.School to responses.
func ToListSchoolResponse(schools []domain.School) []SchoolResponse {
	res := make([]SchoolResponse, len(schools))
	for i := range schools {
		res[i] = ToSchoolResponse(&schools[i])
	}
	return res
}

// ListSchoolsParams defines query parameters for listing schools.
type ListSchoolsParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}
