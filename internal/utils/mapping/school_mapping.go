package mapping

import (
	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/models"
)

// ToModelSchool converts a domain School to a model School
func ToModelSchool(d domain.School) models.School {
	return models.School{
		SchoolID:    d.SchoolID,
		Name:        d.Name,
		Address:     d.Address,
		AuditFields: ToModelAuditFields(d.AuditFields),
		Revocation:  ToModelRevocation(d.Revocation),
	}
}

// ToDomainSchool converts a model School to a domain School
func ToDomainSchool(m models.School) domain.School {
	return domain.School{
		SchoolID:    m.SchoolID,
		Name:        m.Name,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		Revocation:  ToDomainRevocation(m.Revocation),
	}
}

// ToDomainSchoolSlice converts a slice of model Schools to a slice of domain Schools
func ToDomainSchoolSlice(ms []models.School) []domain.School {
	ds := make([]domain.School, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSchool(m)
	}
	return ds
}
