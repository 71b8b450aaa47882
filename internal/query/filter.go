// Package query derives the visible subset of a loaded collection from
// composable predicates and an optional stable ordering. It never mutates
// its input and returns the same output for the same input every time.
package query

import "strings"

// StatusAll is the sentinel filter value that matches every record.
const StatusAll = "all"

type Predicate[T any] func(T) bool

// Visible returns the records matching every predicate, preserving input
// order. The result is always a fresh slice.
func Visible[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// Search matches when any of the record's designated text fields contains
// the term, case-insensitively. An empty term matches everything.
func Search[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(term)
	return func(it T) bool {
		if term == "" {
			return true
		}
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// Status matches on exact status equality; StatusAll matches everything.
func Status[T any](want string, status func(T) string) Predicate[T] {
	return func(it T) bool {
		return want == StatusAll || want == "" || status(it) == want
	}
}
