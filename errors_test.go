package sdk

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with underlying error",
			err:  &Error{Op: "Fingerprinter.DeviceID", Kind: KindUnavailable, Err: ErrDeviceIDUnavailable},
			want: "sdk: Fingerprinter.DeviceID (unavailable): device identifier unavailable",
		},
		{
			name: "without underlying error",
			err:  &Error{Op: "New", Kind: KindConfiguration},
			want: "sdk: New: configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := &Error{Op: "Fingerprinter.Fingerprint", Kind: KindHash, Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() did not match the wrapped error")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{Op: "Fingerprinter.SignalsJSON", Kind: KindSerialization, Err: errors.New("boom")}

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{
			name:   "matching kind",
			target: &Error{Kind: KindSerialization},
			want:   true,
		},
		{
			name:   "matching kind and op",
			target: &Error{Op: "Fingerprinter.SignalsJSON", Kind: KindSerialization},
			want:   true,
		},
		{
			name:   "different kind",
			target: &Error{Kind: KindHash},
			want:   false,
		},
		{
			name:   "different op",
			target: &Error{Op: "Fingerprinter.DeviceID", Kind: KindSerialization},
			want:   false,
		},
		{
			name:   "empty target matches nothing",
			target: &Error{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_ErrorAs(t *testing.T) {
	var err error = &Error{Op: "New", Kind: KindConfiguration, Err: ErrInvalidConfig}

	var sdkErr *Error
	if !errors.As(err, &sdkErr) {
		t.Fatal("errors.As() failed")
	}
	if sdkErr.Kind != KindConfiguration {
		t.Errorf("Kind = %q, want %q", sdkErr.Kind, KindConfiguration)
	}
}
