//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides the random source used by the generators.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker wraps gofakeit so every random draw in a run comes from one source.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// New returns a seeded Faker, or a randomly seeded one when seed is zero.
func New(seed uint64) *Faker {
	if seed == 0 {
		return NewFaker()
	}
	return NewFakerWithSeed(seed)
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 in [min, max).
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Unit returns a random float64 in [0, 1).
func (f *Faker) Unit() float64 {
	return f.faker.Float64Range(0, 1)
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Chance returns true with probability p.
func (f *Faker) Chance(p float64) bool {
	return f.Unit() < p
}

// Index returns a random index into a collection of length n.
func (f *Faker) Index(n int) int {
	return f.Int(0, n-1)
}

// Read fills p with random bytes. It lets seeded runs produce
// reproducible identifiers.
func (f *Faker) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = f.faker.Uint8()
	}
	return len(p), nil
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Index(len(items))]
}
