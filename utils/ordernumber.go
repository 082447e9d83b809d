package utils

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrOrderNumberExhausted is returned when every generated candidate was
// already taken.
var ErrOrderNumberExhausted = errors.New("could not generate a unique order number")

const orderNumberAttempts = 10

// GenerateOrderNumber produces a human-readable order number in the form
// ORD-YYYY-NNNNN and retries until exists reports it free, up to 10 attempts.
// Collisions are random-number clashes, negligible at expected volume.
func GenerateOrderNumber(exists func(number string) (bool, error)) (string, error) {
	year := time.Now().Year()
	for i := 0; i < orderNumberAttempts; i++ {
		candidate := fmt.Sprintf("ORD-%d-%05d", year, rand.Intn(100000))
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrOrderNumberExhausted
}
