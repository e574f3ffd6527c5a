// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate function evaluates to true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Dedupe returns the input with duplicate elements removed, preserving the
// first occurrence order.
func Dedupe[T comparable](input []T) []T {
	if input == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(input))
	result := make([]T, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}

// Intersect returns the elements present in both inputs, preserving the order
// of the first input. The result is deduplicated.
func Intersect[T comparable](first, second []T) []T {
	if len(first) == 0 || len(second) == 0 {
		return []T{}
	}

	membership := make(map[T]struct{}, len(second))
	for _, v := range second {
		membership[v] = struct{}{}
	}

	result := make([]T, 0)
	for _, v := range Dedupe(first) {
		if _, ok := membership[v]; ok {
			result = append(result, v)
		}
	}

	return result
}
