package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle field shared by every managed record.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"

	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Toggled flips ACTIVE and INACTIVE. Any other value becomes ACTIVE.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Record is the header embedded in every stored entity.
type Record struct {
	ID        string    `json:"id" bson:"_id" db:"id"`
	Status    Status    `json:"status" bson:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at" db:"updated_at"`
}

// Base gives generic stores and services access to the embedded header.
func (r *Record) Base() *Record { return r }

// Entity is satisfied by pointers to the stored record types.
type Entity[T any] interface {
	*T
	Base() *Record
}

// NewRecord returns a header with a fresh id and both timestamps set to now.
func NewRecord(status Status, now time.Time) Record {
	now = now.UTC()
	return Record{
		ID:        NewID(),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}
