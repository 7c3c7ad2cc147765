package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords with the bcrypt adaptive hashing algorithm.
// The zero cost selects bcrypt.DefaultCost.
type Bcrypt struct {
	cost int
}

// New creates a bcrypt hasher with the given cost. Costs outside the valid
// bcrypt range fall back to the default cost.
func New(cost int) Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (b Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash.
func (b Bcrypt) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
