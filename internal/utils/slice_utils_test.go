package utils

import "testing"

func TestReverseForEach(t *testing.T) {
	indexes := make([]int, 0, 3)
	ReverseForEach([]string{"a", "b", "c"}, func(index int, _ string) {
		indexes = append(indexes, index)
	})
	if len(indexes) != 3 || indexes[0] != 2 || indexes[2] != 0 {
		t.Errorf("ReverseForEach visited indexes %v; expected [2 1 0]", indexes)
	}
}

func TestReverseForEachEmpty(t *testing.T) {
	ReverseForEach([]int{}, func(int, int) {
		t.Error("callback must not be called for an empty slice")
	})
}
