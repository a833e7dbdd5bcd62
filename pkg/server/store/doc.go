// Package store defines the storage interfaces consumed by the HTTP
// endpoints and the authorization core. Implementations live in the gorm
// subpackage; tests substitute testify mocks.
package store
