package docker

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// A scripted outcome for one fake invocation.
type fakeCall struct {
	code   int
	stdout string
	stderr string
	err    error
}

// Runner that records every invocation and plays back scripted outcomes.
type fakeRunner struct {
	calls [][]string // name + args of each invocation, in order
	next  []fakeCall // consumed one per invocation; empty means exit 0
}

func (f *fakeRunner) Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) (int, error) {
	f.calls = append(f.calls, append([]string{name}, args...))

	var call fakeCall
	if len(f.next) > 0 {
		call = f.next[0]
		f.next = f.next[1:]
	}
	if call.err != nil {
		return -1, call.err
	}
	if stdout != nil {
		io.WriteString(stdout, call.stdout)
	}
	if stderr != nil {
		io.WriteString(stderr, call.stderr)
	}
	return call.code, nil
}

func newFakeClient(r *fakeRunner) *Client {
	return &Client{bin: "docker", runner: r, output: io.Discard}
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "docker")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if err := New("").Available(); err != nil {
		t.Fatalf("Available() = %v, want nil", err)
	}
}

func TestAvailableNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := New("").Available()
	if !errors.Is(err, ErrDockerNotFound) {
		t.Fatalf("Available() = %v, want ErrDockerNotFound", err)
	}
}

func TestPing(t *testing.T) {
	fake := &fakeRunner{}
	client := newFakeClient(fake)

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() = %v, want nil", err)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(fake.calls))
	}
	want := []string{"docker", "info"}
	if got := fake.calls[0]; !equalArgs(got, want) {
		t.Fatalf("invocation = %v, want %v", got, want)
	}
}

func TestPingDaemonDown(t *testing.T) {
	fake := &fakeRunner{next: []fakeCall{
		{code: 1, stderr: "Cannot connect to the Docker daemon"},
	}}
	client := newFakeClient(fake)

	err := client.Ping(context.Background())
	if !errors.Is(err, ErrDaemonUnavailable) {
		t.Fatalf("Ping() = %v, want ErrDaemonUnavailable", err)
	}
}

func TestPingStartFailure(t *testing.T) {
	fake := &fakeRunner{next: []fakeCall{
		{err: errors.New("exec format error")},
	}}
	client := newFakeClient(fake)

	err := client.Ping(context.Background())
	if !errors.Is(err, ErrDaemonUnavailable) {
		t.Fatalf("Ping() = %v, want ErrDaemonUnavailable", err)
	}
}

func TestPull(t *testing.T) {
	fake := &fakeRunner{}
	client := newFakeClient(fake)

	if err := client.Pull(context.Background(), "zmkfirmware/zmk-build-arm:stable"); err != nil {
		t.Fatalf("Pull() = %v, want nil", err)
	}

	want := []string{"docker", "pull", "zmkfirmware/zmk-build-arm:stable"}
	if got := fake.calls[0]; !equalArgs(got, want) {
		t.Fatalf("invocation = %v, want %v", got, want)
	}
}

func TestPullFailure(t *testing.T) {
	fake := &fakeRunner{next: []fakeCall{
		{code: 1, stderr: "manifest unknown"},
	}}
	client := newFakeClient(fake)

	err := client.Pull(context.Background(), "zmkfirmware/zmk-build-arm:stable")
	if !errors.Is(err, ErrDocker) {
		t.Fatalf("Pull() = %v, want ErrDocker", err)
	}
}

func equalArgs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
