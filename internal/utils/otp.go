package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits of a one-time password.
const OTPLength = 6

var otpUpperBound = big.NewInt(1_000_000)

// GenerateOTP returns a zero-padded random code of OTPLength digits.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpUpperBound)
	if err != nil {
		return "", fmt.Errorf("error generating OTP: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}
