package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridblock.toml")
	if err := os.WriteFile(path, []byte("[table]\nrows = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher error = %v", err)
	}
	defer w.Close()

	got := make(chan Config, 1)
	w.OnChange(func(cfg Config, err error) {
		if err != nil {
			return
		}
		select {
		case got <- cfg:
		default:
		}
	})

	if err := os.WriteFile(path, []byte("[table]\nrows = 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-got:
		if cfg.Table.Rows != 7 {
			t.Errorf("reloaded rows = %d, want 7", cfg.Table.Rows)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after the file changed")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridblock.toml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path, WithDebounce(0))
	if err != nil {
		t.Fatalf("NewWatcher error = %v", err)
	}
	defer w.Close()

	called := make(chan struct{}, 1)
	w.OnChange(func(Config, error) {
		select {
		case called <- struct{}{}:
		default:
		}
	})
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-called:
		t.Error("handler ran for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "gridblock.toml"))
	if err != nil {
		t.Fatalf("NewWatcher error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if err := w.Close(); err != ErrWatcherClosed {
		t.Errorf("second Close = %v, want ErrWatcherClosed", err)
	}
}
