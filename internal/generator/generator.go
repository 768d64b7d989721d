package generator

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Generator defines the interface for identifier generation and validation.
// Generation never fails: unknown categories fall back to a table default.
type Generator interface {
	Generate(category string) string
	GenerateBatch(count int) []string
	Validate(id string) (bool, string) // (valid, reason)
}

// Source draws uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a fresh ChaCha8 source seeded from the operating system.
func NewSource() Source {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Option configures a generator.
type Option func(*options)

type options struct {
	newSource func() Source
}

// WithSource replaces the per-call source factory. Tests use it to pin
// generated values.
func WithSource(fn func() Source) Option {
	return func(o *options) {
		o.newSource = fn
	}
}

func buildOptions(opts []Option) options {
	o := options{newSource: NewSource}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func randomDigits(src Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + src.IntN(10))
	}
	return string(b)
}
