// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"caffbench/internal/issue"
)

func TestExitError(t *testing.T) {
	t.Parallel()

	bare := &ExitError{Code: 1}
	if got := bare.Error(); got != "exit status 1" {
		t.Errorf("Error() = %q, want %q", got, "exit status 1")
	}

	cause := errors.New("malformed results")
	wrapped := &ExitError{Code: 2, Err: cause}
	if got := wrapped.Error(); got != "malformed results" {
		t.Errorf("Error() = %q, want cause message", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("ExitError should unwrap to its cause")
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("plain error should format as-is, got %q", got)
	}

	actionable := issue.NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("check the file path").
		Wrap(errors.New("no such file")).
		BuildError()

	got := formatErrorForDisplay(actionable, false)
	if got == actionable.Error() {
		t.Error("actionable errors should use the suggestion-formatting path")
	}
}

func TestHumanSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{3 << 20, "3.0 MiB"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%d", tt.in), func(t *testing.T) {
			t.Parallel()
			if got := humanSize(tt.in); got != tt.want {
				t.Errorf("humanSize(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
