package audit

import "fmt"

// CheckEvent represents an authorization decision audit event
type CheckEvent struct {
	PrincipalID  string
	ClientIP     string
	EntityKind   string
	EntityID     string
	Action       string
	Allowed      bool
	ErrorMessage string
}

func (e CheckEvent) MessageID() string {
	return "check"
}

func (e CheckEvent) Message() string {
	entity := e.EntityKind
	if e.EntityID != "" {
		entity += " " + e.EntityID
	}
	if e.Allowed {
		return fmt.Sprintf("%s %s on %s: allowed", e.PrincipalID, e.Action, entity)
	}
	return fmt.Sprintf("%s %s on %s: denied", e.PrincipalID, e.Action, entity)
}

func (e CheckEvent) Severity() Severity {
	return SeverityInfo
}

func (e CheckEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CheckEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
	sd := map[string]map[string]string{
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
			"operation": e.Action,
			"result":    result,
		},
	}
	if e.ErrorMessage != "" {
		sd[SDIDAction]["error"] = e.ErrorMessage
	}
	return sd
}
