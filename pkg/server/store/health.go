package store

// HealthStore abstracts health checks
type HealthStore interface {
	// CheckConnectivity verifies the database connection is usable.
	CheckConnectivity() error
}
