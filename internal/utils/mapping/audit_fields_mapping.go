package mapping

import (
	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModelRevocation converts a domain Revocation to a model Revocation
func ToModelRevocation(d domain.Revocation) models.Revocation {
	return models.Revocation{RevokedAt: d.RevokedAt}
}

// ToDomainRevocation converts a model Revocation to a domain Revocation
func ToDomainRevocation(m models.Revocation) domain.Revocation {
	return domain.Revocation{RevokedAt: m.RevokedAt}
}
