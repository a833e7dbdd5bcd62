package authz

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform lower -output action.gen.go

// Action is a data operation subject to authorization.
type Action int

const (
	ActionSelect Action = iota
	ActionInsert
	ActionUpdate
	ActionDelete
)
