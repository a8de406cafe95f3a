package math

import "golang.org/x/exp/constraints"

func IsPrime[T constraints.Integer](n T) bool {
	if n < 2 {
		return false
	}
	for i := T(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime >= n. Linear scan, fine for bucket
// counts but not for large n.
func NextPrime[T constraints.Integer](n T) T {
	if n < 2 {
		return 2
	}
	for !IsPrime(n) {
		n++
	}
	return n
}
