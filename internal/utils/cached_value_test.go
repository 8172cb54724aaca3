package utils

import (
	"testing"
	"time"
)

func TestCachedValue(t *testing.T) {
	calls := 0
	value := 42
	cached := NewCachedValue(time.Hour, func() *int {
		calls++
		return &value
	})
	if got := cached.GetValue(); *got != 42 {
		t.Errorf("GetValue() = %d; expected 42", *got)
	}
	cached.GetValue()
	if calls != 1 {
		t.Errorf("getter called %d times; expected 1", calls)
	}
}

func TestCachedValueForever(t *testing.T) {
	calls := 0
	cached := NewCachedValue(0, func() *string {
		calls++
		value := "config"
		return &value
	})
	for i := 0; i < 5; i++ {
		cached.GetValue()
	}
	if calls != 1 {
		t.Errorf("getter called %d times; expected 1", calls)
	}
}
