package i

import (
	"time"
)

// Tokenizer issues and checks the bearer tokens that unlock a maze session.
type Tokenizer interface {
	// Generate signs claims into a token that expires after ttl.
	Generate(claims map[string]interface{}, ttl time.Duration) (string, error)

	// Decode verifies a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
