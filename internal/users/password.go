package users

import "golang.org/x/crypto/bcrypt"

// PasswordEncoder hashes plain-text passwords and checks candidates
// against stored hashes.
type PasswordEncoder interface {
	Encode(plain string) (string, error)
	Compare(encoded, plain string) bool
}

// BcryptEncoder implements PasswordEncoder with bcrypt.
type BcryptEncoder struct {
	cost int
}

// NewBcryptEncoder creates an encoder with the given cost. Costs outside
// the valid bcrypt range fall back to the default cost.
func NewBcryptEncoder(cost int) *BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncoder{cost: cost}
}

// Encode hashes the plain-text password.
func (e *BcryptEncoder) Encode(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether plain matches the stored hash.
func (e *BcryptEncoder) Compare(encoded, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain)) == nil
}
