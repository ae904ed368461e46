package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Revocation is the shared soft-delete state. Any entity embedding it can be
// revoked and later restored; revoked rows stay in the ledger.
type Revocation struct {
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

// IsRevoked reports whether the entity has been soft-deleted.
func (r Revocation) IsRevoked() bool {
	return r.RevokedAt != nil
}

// Revoke marks the entity as soft-deleted at the given instant.
func (r *Revocation) Revoke(now time.Time) {
	r.RevokedAt = &now
}

// Restore clears the soft-delete marker.
func (r *Revocation) Restore() {
	r.RevokedAt = nil
}
