package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

type typedError struct{}

func (e *typedError) Error() string { return "typed" }

type panickyError struct{}

func (e *panickyError) Error() string { panic("error cannot describe itself") }

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"stdlib errors.New", errors.New("x"), "errors.errorString"},
		{"wrapped fmt", fmt.Errorf("x: %w", errors.New("y")), "fmt.wrapError"},
		{"os path error", &os.PathError{Op: "open", Path: "/x"}, "io/fs.PathError"},
		{"local pointer type", &typedError{}, "github.com/aretw0/causeway/pkg/domain.typedError"},
		{"nil", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeOf(tc.err); got != tc.want {
				t.Errorf("TypeOf() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReasonOf(t *testing.T) {
	if got := ReasonOf(errors.New("boom")); got != "boom" {
		t.Errorf("ReasonOf() = %q, want %q", got, "boom")
	}
	if got := ReasonOf(nil); got != "" {
		t.Errorf("ReasonOf(nil) = %q, want empty", got)
	}
}

func TestReasonOf_PanickyError(t *testing.T) {
	if got := ReasonOf(&panickyError{}); got != "unprintable error" {
		t.Errorf("ReasonOf() = %q, want the safe placeholder", got)
	}
}
