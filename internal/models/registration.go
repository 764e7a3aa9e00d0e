package models

// PendingRegistration is the transient phase-1 registration payload, held in
// an expiring store keyed by correlation token until phase 2 completes it.
type PendingRegistration struct {
	FullName string `json:"full_name"`
	Mobile   string `json:"mobile"`
}
