// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package set is a generic set of comparable elements, trimmed from the
// general-purpose collection used across the wider consensus stack down to
// the handful of operations the quorum-set searches and accumulators need:
// build one up member by member, union two together, test membership, and
// clone before forking into a branch.
package set

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
)

// minSetSize is the minimum capacity allocated for a non-empty set.
const minSetSize = 8

// Set is a set of comparable elements.
type Set[T comparable] map[T]struct{}

// Of returns a Set initialized with elts.
func Of[T comparable](elts ...T) Set[T] {
	s := New[T](len(elts))
	s.Add(elts...)
	return s
}

// New returns an empty set with initial capacity for size elements.
func New[T comparable](size int) Set[T] {
	if size < 0 {
		return Set[T]{}
	}
	if size < minSetSize {
		size = minSetSize
	}
	return make(map[T]struct{}, size)
}

func (s *Set[T]) resize(size int) {
	if *s == nil {
		*s = New[T](size)
	}
}

// Add inserts elts into the set. Re-adding an existing element is a no-op.
func (s *Set[T]) Add(elts ...T) {
	s.resize(2 * len(elts))
	for _, elt := range elts {
		(*s)[elt] = struct{}{}
	}
}

// Union adds every element of other into s.
func (s *Set[T]) Union(other Set[T]) {
	s.resize(2 * other.Len())
	for elt := range other {
		(*s)[elt] = struct{}{}
	}
}

// Contains reports whether elt is in the set.
func (s Set[T]) Contains(elt T) bool {
	_, ok := s[elt]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// List returns the set's elements in unspecified order.
func (s Set[T]) List() []T {
	list := make([]T, 0, len(s))
	for elt := range s {
		list = append(list, elt)
	}
	return list
}

// Clone returns an independent copy of s: mutating the copy never affects
// s. Search branches clone the accumulator before forking so an abandoned
// branch cannot contaminate the caller's retained state.
func (s Set[T]) Clone() Set[T] {
	return maps.Clone(s)
}

// Equals reports whether s and other contain exactly the same elements.
func (s Set[T]) Equals(other Set[T]) bool {
	return maps.Equal(s, other)
}

// String renders the set for diagnostics.
func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for elt := range s {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", elt)
	}
	sb.WriteByte('}')
	return sb.String()
}
