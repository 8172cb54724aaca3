// Package utils
package utils

// ReverseForEach visits src from the last element to the first
func ReverseForEach[T any](src []T, callback func(index int, element T)) {
	for i := len(src) - 1; i >= 0; i-- {
		callback(i, src[i])
	}
}
