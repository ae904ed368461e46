package mapping

import (
	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/models"
)

// ToModelStudent converts a domain Student to a model Student
func ToModelStudent(d domain.Student) models.Student {
	return models.Student{
		StudentID:   d.StudentID,
		Name:        d.Name,
		Email:       d.Email,
		SchoolID:    d.SchoolID,
		AuditFields: ToModelAuditFields(d.AuditFields),
		Revocation:  ToModelRevocation(d.Revocation),
	}
}

// ToDomainStudent converts a model Student to a domain Student
func ToDomainStudent(m models.Student) domain.Student {
	return domain.Student{
		StudentID:   m.StudentID,
		Name:        m.Name,
		Email:       m.Email,
		SchoolID:    m.SchoolID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		Revocation:  ToDomainRevocation(m.Revocation),
	}
}

// ToDomainStudentSlice converts a slice of model Students to a slice of domain Students
func ToDomainStudentSlice(ms []models.Student) []domain.Student {
	ds := make([]domain.Student, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStudent(m)
	}
	return ds
}
