package pkguid

import "github.com/google/uuid"

// StringID generates opaque string identifiers (request ids, booking
// references).
type StringID interface {
	Generate() string
}

type uuidGenerator struct{}

func NewUUID() StringID {
	return uuidGenerator{}
}

func (uuidGenerator) Generate() string {
	return uuid.NewString()
}
