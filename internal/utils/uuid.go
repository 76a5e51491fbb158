package utils

import "github.com/google/uuid"

// UUIDGenerator produces the random v4 identifiers assigned to every row
// before insertion. The store never relies on database-side id generation.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new random v4 UUID.
func (g *UUIDGenerator) Generate() uuid.UUID {
	return uuid.New()
}
