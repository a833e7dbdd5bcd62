// Package gorm implements the store interfaces using GORM over
// PostgreSQL. Constraint violations are mapped to the sentinel errors in
// the store package; "no such row" reads return nil values rather than
// errors.
package gorm
