package gmerr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("bad hex")
	err := Wrap(MalformedInput, "sm2.ParsePublicKey", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true")
	}

	var ge *Error
	if !errors.As(err, &ge) {
		t.Fatalf("errors.As failed to recover *Error")
	}
	if ge.Kind != MalformedInput {
		t.Fatalf("Kind = %v, want MalformedInput", ge.Kind)
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{MalformedInput, "malformed input"},
		{OutOfRange, "out of range"},
		{IntegrityFailure, "integrity failure"},
		{Internal, "internal error"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestErrorMessageIncludesOp(t *testing.T) {
	err := New(OutOfRange, "sm2.DecompressPublicKey", "x is not less than p")
	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	if !strings.Contains(msg, "sm2.DecompressPublicKey") {
		t.Fatalf("message %q does not include the op", msg)
	}
	if got := err.Kind; got != OutOfRange {
		t.Fatalf("Kind = %v, want OutOfRange", got)
	}
}
