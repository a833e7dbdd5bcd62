package store

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrUniqueViolation means a write conflicted with a uniqueness
	// constraint (duplicate label name, duplicate membership pair,
	// duplicate login). The storage layer serializes racing writers; the
	// policy evaluator never masks this error.
	ErrUniqueViolation = errors.New("store: unique constraint violation")

	// ErrForeignKeyViolation means a write referenced a missing parent.
	ErrForeignKeyViolation = errors.New("store: foreign key violation")
)
