package utils

import "github.com/google/uuid"

// UUIDGenerator produces UUIDv7 identifiers. Version 7 is time-ordered,
// so photo IDs sort by capture time, which keeps remote object listings
// readable.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random UUIDv4
// if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
