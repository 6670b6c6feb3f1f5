package utils

import (
	"strings"

	"github.com/google/uuid"
)

// TransactionNumberGenerator produces unique transaction numbers for
// newly created orders. Numbers are time-ordered (UUIDv7) so that order
// lists sorted by transaction number roughly follow creation order.
type TransactionNumberGenerator struct {
}

func NewTransactionNumberGenerator() *TransactionNumberGenerator {
	return &TransactionNumberGenerator{}
}

// Generate returns a fresh transaction number in the form
// "TXN-<uuid>". Falls back to a random UUIDv4 when the monotonic
// clock source is unavailable.
func (g *TransactionNumberGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return "TXN-" + strings.ToUpper(uuid.NewString())
	}

	return "TXN-" + strings.ToUpper(v7.String())
}
