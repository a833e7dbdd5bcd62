// Package audit provides security audit logging for LabelForge.
//
// Events are emitted in RFC5424 syslog format on stdout and, when
// AUDIT_DATABASE_URL is set, persisted to an audit database. Every
// authorization decision, authentication attempt, and destructive write
// produces one event.
package audit
