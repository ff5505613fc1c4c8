package expire_test

import (
	"testing"
	"time"

	"github.com/toastd/toastd/expire"
)

func TestSecondsArithmetic(t *testing.T) {
	if got := expire.Seconds(30).Add(12); got != 42 {
		t.Errorf("30 + 12 = %d, want 42", got)
	}
	if got := expire.Seconds(30).Sub(45); got != -15 {
		t.Errorf("30 - 45 = %d, want -15", got)
	}
	if got := expire.Seconds(-7).Int(); got != -7 {
		t.Errorf("Int() = %d, want -7", got)
	}
}

func TestSecondsTime(t *testing.T) {
	if got := expire.Seconds(0).Time(); !got.Equal(time.UnixMilli(0)) {
		t.Errorf("Seconds(0).Time() = %v, want epoch", got)
	}
	want := time.UnixMilli(90 * 1000)
	if got := expire.Seconds(90).Time(); !got.Equal(want) {
		t.Errorf("Seconds(90).Time() = %v, want %v", got, want)
	}
}
