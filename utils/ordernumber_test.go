package utils

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{4}-\d{5}$`)

func TestGenerateOrderNumberFormat(t *testing.T) {
	number, err := GenerateOrderNumber(func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatal(err)
	}
	if !orderNumberPattern.MatchString(number) {
		t.Errorf("order number %q does not match ORD-YYYY-NNNNN", number)
	}
	wantPrefix := fmt.Sprintf("ORD-%d-", time.Now().Year())
	if number[:len(wantPrefix)] != wantPrefix {
		t.Errorf("order number %q does not start with %q", number, wantPrefix)
	}
}

func TestGenerateOrderNumberRetries(t *testing.T) {
	calls := 0
	number, err := GenerateOrderNumber(func(string) (bool, error) {
		calls++
		return calls < 3, nil // first two candidates taken
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("exists called %d times, want 3", calls)
	}
	if !orderNumberPattern.MatchString(number) {
		t.Errorf("order number %q does not match format", number)
	}
}

func TestGenerateOrderNumberExhausted(t *testing.T) {
	_, err := GenerateOrderNumber(func(string) (bool, error) { return true, nil })
	if err != ErrOrderNumberExhausted {
		t.Errorf("error = %v, want ErrOrderNumberExhausted", err)
	}
}
