package commands

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"testing"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := newFlagSet("stats")
	n := fs.Int("n", 1, "")
	ran := 0
	r.Register("stats", "print counts", fs, func() error {
		ran = *n
		return nil
	})

	if err := r.Execute([]string{"stats", "-n", "7"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ran != 7 {
		t.Errorf("flag value seen by Run = %d, want 7", ran)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	runErr := errors.New("boom")
	r.Register("fail", "", newFlagSet("fail"), func() error { return runErr })

	if err := r.Execute(nil); !errors.Is(err, ErrUsage) {
		t.Errorf("Execute(nil) = %v, want ErrUsage", err)
	}
	if err := r.Execute([]string{"nope"}); err == nil {
		t.Error("Execute(unknown) error = nil")
	}
	if err := r.Execute([]string{"fail", "-bogus"}); err == nil {
		t.Error("Execute(bad flag) error = nil")
	}
	if err := r.Execute([]string{"fail"}); !errors.Is(err, runErr) {
		t.Errorf("Execute(fail) = %v, want %v", err, runErr)
	}
}

func TestUsage(t *testing.T) {
	r := NewRegistry()
	r.Register("view", "open viewer", newFlagSet("view"), func() error { return nil })
	r.Register("stats", "print counts", newFlagSet("stats"), func() error { return nil })

	var buf bytes.Buffer
	r.Usage(&buf)
	want := "  stats    print counts\n  view     open viewer\n"
	if buf.String() != want {
		t.Errorf("Usage() = %q, want %q", buf.String(), want)
	}
}
