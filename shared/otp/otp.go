package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"servicehub/shared/constant"
)

var upperBound = big.NewInt(1_000_000)

// Generate returns a uniformly random zero padded decimal code.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, upperBound)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	return fmt.Sprintf("%0*d", constant.OTPLength, n.Int64()), nil
}

// Equal compares codes in constant time.
func Equal(expected, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(submitted)) == 1
}
