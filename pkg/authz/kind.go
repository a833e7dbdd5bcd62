package authz

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform snake -output kind.gen.go

// Kind identifies the entity table an authorization request refers to.
type Kind int

const (
	KindProject Kind = iota
	KindLabel
	KindImage
	KindAnnotation
	KindMembership
)
