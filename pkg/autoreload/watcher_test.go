package autoreload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchInvokesOnChange(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DEBUG=false\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, envFile, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to attach before writing
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(envFile, []byte("DEBUG=true\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite env file: %v", err)
	}

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("onChange was not invoked after the file changed")
	}

	cancel()
	if err := <-done; err != context.Canceled && err != context.DeadlineExceeded {
		t.Errorf("Watch() returned unexpected error: %v", err)
	}
}

func TestWatchCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DEBUG=false\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, envFile, func() {
			changed <- struct{}{}
		})
	}()

	time.Sleep(100 * time.Millisecond)

	// A burst of writes inside the debounce window is one reload
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(envFile, []byte("DEBUG=true\n"), 0o644); err != nil {
			t.Fatalf("failed to rewrite env file: %v", err)
		}
		time.Sleep(DebounceInterval / 5)
	}

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("onChange was not invoked after the burst")
	}

	select {
	case <-changed:
		t.Error("burst of writes produced more than one onChange")
	case <-time.After(2 * DebounceInterval):
	}

	cancel()
	<-done
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DEBUG=false\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, envFile, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	time.Sleep(100 * time.Millisecond)

	other := filepath.Join(dir, "unrelated.txt")
	if err := os.WriteFile(other, []byte("noise\n"), 0o644); err != nil {
		t.Fatalf("failed to write unrelated file: %v", err)
	}

	select {
	case <-changed:
		t.Error("onChange fired for an unrelated file")
	case <-time.After(2 * DebounceInterval):
	}

	cancel()
	<-done
}
