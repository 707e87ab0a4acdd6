package logger

import "testing"

func TestNewReturnsLogger(t *testing.T) {
	log := New()
	if log == nil {
		t.Fatal("expected logger instance")
	}
	if !log.Enabled(nil, 0) {
		t.Fatal("expected info level to be enabled")
	}
}
