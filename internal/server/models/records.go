package models

import "time"

// Field names used when a record is presented as a flat document.
const (
	FieldWorkerID   = "worker_id"
	FieldCreatedAt  = "created_at"
	FieldLastActive = "last_active"
	FieldUID        = "uid"
	FieldUserCreate = "createdAt"
	FieldLastLogin  = "lastLogin"
)

// WorkerRecord is the worker profile keyed by account id. System fields are
// kept apart from the caller payload; timestamps are assigned by the store.
type WorkerRecord struct {
	UID        string
	WorkerID   string
	Data       Payload
	CreatedAt  time.Time
	LastActive time.Time
}

// UserRecord is the user profile sharing the worker's key and worker id.
type UserRecord struct {
	UID       string
	WorkerID  string
	Data      Payload
	CreatedAt time.Time
	LastLogin time.Time
}

// Document flattens the record into a single map. System fields win over
// payload keys with the same name.
func (w *WorkerRecord) Document() map[string]any {
	return w.Data.merge(map[string]any{
		FieldWorkerID:   w.WorkerID,
		FieldCreatedAt:  w.CreatedAt,
		FieldLastActive: w.LastActive,
	})
}

// Document flattens the record into a single map. System fields win over
// payload keys with the same name.
func (u *UserRecord) Document() map[string]any {
	return u.Data.merge(map[string]any{
		FieldUID:        u.UID,
		FieldWorkerID:   u.WorkerID,
		FieldUserCreate: u.CreatedAt,
		FieldLastLogin:  u.LastLogin,
	})
}
