package myterm

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewPTYRunsShell(t *testing.T) {
	p, err := NewPTY("/bin/sh", []string{"-c", "echo hello"}, 24, 80)
	if err != nil {
		t.Fatalf("NewPTY: %v", err)
	}
	defer p.Close()

	if p.Pid() == 0 {
		t.Fatal("expected non-zero pid")
	}

	buf := make([]byte, 256)
	var out strings.Builder
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		n, err := p.Read(buf)
		out.Write(buf[:n])
		if err != nil {
			break
		}
		if strings.Contains(out.String(), "hello") {
			break
		}
	}

	if !strings.Contains(out.String(), "hello") {
		t.Fatalf("expected output to contain %q, got %q", "hello", out.String())
	}
}

func TestPTYResize(t *testing.T) {
	p, err := NewPTY("/bin/sh", []string{"-c", "sleep 1"}, 24, 80)
	if err != nil {
		t.Fatalf("NewPTY: %v", err)
	}
	defer p.Close()

	if err := p.Resize(40, 120); err != nil {
		t.Fatalf("Resize: %v", err)
	}
}

func TestPTYWriteTimeout(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	// Fill the pipe so a subsequent write blocks long enough to time out.
	chunk := make([]byte, 4096)
	for {
		_ = w.SetWriteDeadline(time.Now().Add(50 * time.Millisecond))
		if _, err := w.Write(chunk); err != nil {
			break
		}
	}
	_ = w.SetWriteDeadline(time.Time{})

	p := &PTY{master: w}
	start := time.Now()
	_, err = p.Write([]byte("x"), time.Now().Add(100*time.Millisecond))
	elapsed := time.Since(start)

	if err != ErrPTYWriteTimeout {
		t.Fatalf("expected ErrPTYWriteTimeout, got %v", err)
	}
	if elapsed < 50*time.Millisecond {
		t.Fatalf("returned too fast (%v), timeout may not be enforced", elapsed)
	}
}

func TestPTYReadEOFBecomesChildExited(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	w.Close()

	p := &PTY{master: r}
	buf := make([]byte, 16)
	_, err = p.Read(buf)
	if err != ErrChildExited {
		t.Fatalf("expected ErrChildExited, got %v", err)
	}
}
