package model

import "time"

// Record carries the fields shared by every portal resource. The id is
// assigned server-side at creation and never changes; updatedAt is refreshed
// on every mutation.
type Record struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StampNew assigns the generated id and creation timestamps. A pre-assigned
// id (needed when an image upload is keyed by the id before the write) wins.
func (r *Record) StampNew(id string, now time.Time) {
	if r.ID == "" {
		r.ID = id
	}
	r.CreatedAt = now
	r.UpdatedAt = now
}

// StampUpdate refreshes the mutation timestamp.
func (r *Record) StampUpdate(now time.Time) {
	r.UpdatedAt = now
}
