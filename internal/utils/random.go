package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateBookingReference returns "BK-" followed by a number drawn
// uniformly from [100000, 999999]. Uniqueness is not checked.
func GenerateBookingReference() string {
	return BookingReferencePrefix + strconv.Itoa(SecureRandomIntRange(BookingReferenceMin, BookingReferenceMax))
}

// SecureRandomIntRange returns a uniform integer in [min, max].
func SecureRandomIntRange(min, max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return min
	}
	return min + int(n.Int64())
}

func GenerateRandomNumericString(length int) string {
	const numberBytes = "0123456789"
	result := make([]byte, length)
	charsetLength := big.NewInt(int64(len(numberBytes)))

	for i := range result {
		num, _ := rand.Int(rand.Reader, charsetLength)
		result[i] = numberBytes[num.Int64()]
	}

	return string(result)
}
