package domain_test

import (
	"testing"

	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: domain.ExitOK},
		{name: "bad output", err: zerr.Wrap(domain.ErrOutputNotWritable, "opening manifest failed"), want: domain.ExitBadOutput},
		{name: "missing input", err: zerr.With(zerr.Wrap(domain.ErrInputNotFound, "classifying input failed"), "file", "/bin/nope"), want: domain.ExitMissingFile},
		{name: "unknown architecture", err: domain.ErrUnknownArchitecture, want: domain.ExitUnknownArch},
		{name: "anything else", err: zerr.New("objdump exploded"), want: domain.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
