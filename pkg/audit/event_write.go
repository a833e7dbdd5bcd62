package audit

import "fmt"

// WriteEvent represents a create, update, or delete of an entity
type WriteEvent struct {
	PrincipalID string
	ClientIP    string
	EntityKind  string
	EntityID    string
	Operation   string // insert, update, delete
	Success     bool
}

func (e WriteEvent) MessageID() string {
	return e.Operation
}

func (e WriteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s %s", e.PrincipalID, e.Operation, e.EntityKind, e.EntityID)
	}
	return fmt.Sprintf("%s tried to %s %s %s", e.PrincipalID, e.Operation, e.EntityKind, e.EntityID)
}

func (e WriteEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e WriteEvent) Facility() int {
	return FacilityAuth
}

func (e WriteEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.PrincipalID,
		},
		SDIDSubject: {
			"kind": e.EntityKind,
			"id":   e.EntityID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
}
