// Package numeric provides primality checks, a prime sieve, arbitrary precision
// factorials and planar distance.
package numeric
