package numeric

import (
	"fmt"

	"github.com/aretw0/utilkit/pkg/domain"
)

// MaxSieveLimit is the largest limit PrimesChecked accepts. The sieve holds one
// byte per candidate.
const MaxSieveLimit = 1 << 30

// IsPrime reports whether n is prime. Values below 2 are not.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// Candidates are 6k±1; i <= n/i avoids overflowing i*i near MaxInt.
	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Primes returns every prime <= limit in increasing order using the sieve of
// Eratosthenes. The result is empty, not nil, when limit < 2. It panics when
// limit exceeds MaxSieveLimit; use PrimesChecked for untrusted input.
func Primes(limit int) []int {
	primes, err := PrimesChecked(limit)
	if err != nil {
		panic(err)
	}
	return primes
}

// PrimesChecked is Primes returning ErrInvalidArgument when limit exceeds
// MaxSieveLimit.
func PrimesChecked(limit int) ([]int, error) {
	if limit > MaxSieveLimit {
		return nil, fmt.Errorf("%w: limit %d exceeds %d", domain.ErrInvalidArgument, limit, MaxSieveLimit)
	}
	if limit < 2 {
		return []int{}, nil
	}

	composite := make([]bool, limit+1)
	for i := 2; i <= limit/i; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	primes := make([]int, 0, estimateCount(limit))
	for i := 2; i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes, nil
}

// estimateCount is a cheap upper bound for pi(limit), used to size the result.
func estimateCount(limit int) int {
	if limit < 100 {
		return 25
	}
	return limit / 4
}
