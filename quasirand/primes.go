package quasirand

// first168Primes is a hard-coded prefix of the prime sequence, matching the
// literal table in the original implementation (see
// _examples/original_source/scipy/stats/_qmc.py:443-455, n_primes). It
// avoids sieving for the common case of low-dimensional Halton sequences.
var first168Primes = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59,
	61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127,
	131, 137, 139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193,
	197, 199, 211, 223, 227, 229, 233, 239, 241, 251, 257, 263, 269,
	271, 277, 281, 283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
	353, 359, 367, 373, 379, 383, 389, 397, 401, 409, 419, 421, 431,
	433, 439, 443, 449, 457, 461, 463, 467, 479, 487, 491, 499, 503,
	509, 521, 523, 541, 547, 557, 563, 569, 571, 577, 587, 593, 599,
	601, 607, 613, 617, 619, 631, 641, 643, 647, 653, 659, 661, 673,
	677, 683, 691, 701, 709, 719, 727, 733, 739, 743, 751, 757, 761,
	769, 773, 787, 797, 809, 811, 821, 823, 827, 829, 839, 853, 857,
	859, 863, 877, 881, 883, 887, 907, 911, 919, 929, 937, 941, 947,
	953, 967, 971, 977, 983, 991, 997,
}

// NPrimes returns the first n primes, in order. For n within the hard-coded
// prefix it is a simple slice; beyond that it falls back to a sieve of
// Eratosthenes over a range that doubles until it yields at least n primes.
func NPrimes(n int) []int {
	if n <= 0 {
		return nil
	}
	if n <= len(first168Primes) {
		out := make([]int, n)
		copy(out, first168Primes[:n])
		return out
	}
	limit := 2000
	for {
		primes := sieve(limit)
		if len(primes) >= n {
			return primes[:n]
		}
		limit *= 2
	}
}

// sieve returns every prime in [2, limit] via a sieve of Eratosthenes.
func sieve(limit int) []int {
	composite := make([]bool, limit+1)
	var primes []int
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}
