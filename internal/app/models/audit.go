package models

import "time"

type AuditEvent struct {
	Type       string            `json:"type"`
	ActorID    string            `json:"actor_id"`
	SubjectID  string            `json:"subject_id,omitempty"`
	Method     string            `json:"method,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
