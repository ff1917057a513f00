/*
Package utilkit is a collection of small, stateless helpers for everyday tasks:
string transforms, hashing, numeric routines, set operations over slices and
structured file I/O.

The helpers live in focused packages under pkg/. None of them share state, so
every function is safe to call from multiple goroutines. Failures carry one of
the sentinels in pkg/domain and are classified with errors.Is.

# Packages

  - text: passwords, camelCase/snake_case conversion, reversal, vowels, deduplication, accent folding, palindromes.
  - hashing: hex digests under a named algorithm (md5, sha family, sha3, blake2b, xxh64).
  - numeric: primality, prime sieve, arbitrary precision factorial, planar distance.
  - sets: intersection, union and difference with deterministic ordering.
  - fileio: JSON, CSV, YAML and TOML save/load, record decoding, directory creation.

# Usage

	package main

	import (
		"errors"
		"fmt"
		"log"

		"github.com/aretw0/utilkit/pkg/domain"
		"github.com/aretw0/utilkit/pkg/fileio"
		"github.com/aretw0/utilkit/pkg/numeric"
		"github.com/aretw0/utilkit/pkg/text"
	)

	func main() {
		fmt.Println(text.CamelToSnake("HelloWorld")) // hello_world

		f, err := numeric.Factorial(30)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(f) // 265252859812191058636308480000000

		if _, err := fileio.LoadJSON("settings.json"); errors.Is(err, domain.ErrNotFound) {
			log.Println("no settings yet")
		}
	}

The cmd/utilkit binary exposes the same helpers on the command line and as MCP
tools ("utilkit mcp").
*/
package utilkit
