package numeric

import (
	"fmt"
	"math/big"

	"github.com/aretw0/utilkit/pkg/domain"
)

// Factorial returns n! with arbitrary precision. 0! is 1.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial of negative number %d", domain.ErrInvalidArgument, n)
	}
	if n < 2 {
		return big.NewInt(1), nil
	}
	return new(big.Int).MulRange(2, int64(n)), nil
}
