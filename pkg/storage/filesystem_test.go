package storage_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JaimeStill/product-admin/pkg/lifecycle"
	"github.com/JaimeStill/product-admin/pkg/storage"
)

const publicURL = "http://localhost:8080/api/blobs"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func startedSystem(t *testing.T) (storage.System, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &storage.Config{BasePath: dir, PublicURL: publicURL}

	sys, err := storage.New(cfg, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	lc.WaitForStartup()

	return sys, dir
}

func TestNew_EmptyBasePath(t *testing.T) {
	_, err := storage.New(&storage.Config{}, testLogger())
	if err == nil {
		t.Fatal("New() succeeded with empty BasePath, want error")
	}
}

func TestStart_CreatesDirectory(t *testing.T) {
	targetDir := filepath.Join(t.TempDir(), "nested", "blobs")
	sys, err := storage.New(&storage.Config{BasePath: targetDir}, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	lc.WaitForStartup()

	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		t.Error("Start() did not create storage directory")
	}
}

func TestStore_Retrieve_RoundTrip(t *testing.T) {
	sys, dir := startedSystem(t)
	ctx := context.Background()
	key := "user-1/1700000000000"
	data := []byte("image bytes")

	if err := sys.Store(ctx, key, data); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	retrieved, err := sys.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}
	if string(retrieved) != string(data) {
		t.Errorf("Retrieved data = %q, want %q", retrieved, data)
	}

	if _, err := os.Stat(filepath.Join(dir, "user-1", "1700000000000")); err != nil {
		t.Errorf("expected blob on disk: %v", err)
	}
}

func TestStore_Overwrite(t *testing.T) {
	sys, _ := startedSystem(t)
	ctx := context.Background()
	key := "user-1/overwrite"

	sys.Store(ctx, key, []byte("original"))
	sys.Store(ctx, key, []byte("updated"))

	data, _ := sys.Retrieve(ctx, key)
	if string(data) != "updated" {
		t.Errorf("Retrieved = %q after overwrite, want %q", data, "updated")
	}
}

func TestStore_ConcurrentSameKey(t *testing.T) {
	sys, dir := startedSystem(t)
	ctx := context.Background()
	key := "user-1/contended"

	payloads := []string{"aaaaaaaa", "bbbbbbbb", "cccccccc", "dddddddd"}
	errs := make([]error, len(payloads))

	var wg sync.WaitGroup
	for i, p := range payloads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = sys.Store(ctx, key, []byte(p))
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Store() #%d failed: %v", i, err)
		}
	}

	data, err := sys.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}
	found := false
	for _, p := range payloads {
		if string(data) == p {
			found = true
		}
	}
	if !found {
		t.Errorf("Retrieved = %q, want one complete payload", data)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, "user-1", "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	sys, _ := startedSystem(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sys.Store(ctx, "user-1/canceled", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("Store() error = %v, want %v", err, context.Canceled)
	}
}

func TestRetrieve_NotFound(t *testing.T) {
	sys, _ := startedSystem(t)

	_, err := sys.Retrieve(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestInvalidKey(t *testing.T) {
	sys, _ := startedSystem(t)
	ctx := context.Background()

	keys := []string{
		"",
		"../escape",
		"foo/../../escape",
		"/absolute/path",
		"alice/../bob/1",
		"alice/",
		"alice//1",
		"./alice/1",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			if err := sys.Store(ctx, key, []byte("x")); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Store(%q) error = %v, want %v", key, err, storage.ErrInvalidKey)
			}
			if _, err := sys.URL(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("URL(%q) error = %v, want %v", key, err, storage.ErrInvalidKey)
			}
		})
	}
}

func TestURL_Format(t *testing.T) {
	sys, _ := startedSystem(t)
	ctx := context.Background()
	key := "user 1/1700000000000"

	if err := sys.Store(ctx, key, []byte("x")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	u, err := sys.URL(ctx, key)
	if err != nil {
		t.Fatalf("URL() failed: %v", err)
	}

	prefix := publicURL + "/user%201/1700000000000?v="
	if !strings.HasPrefix(u, prefix) {
		t.Errorf("URL() = %q, want prefix %q", u, prefix)
	}
}

func TestURL_ChangesOnOverwrite(t *testing.T) {
	sys, dir := startedSystem(t)
	ctx := context.Background()
	key := "user-1/photo"

	sys.Store(ctx, key, []byte("first"))
	past := time.Now().Add(-time.Hour)
	os.Chtimes(filepath.Join(dir, "user-1", "photo"), past, past)

	first, err := sys.URL(ctx, key)
	if err != nil {
		t.Fatalf("URL() failed: %v", err)
	}

	sys.Store(ctx, key, []byte("second"))

	second, err := sys.URL(ctx, key)
	if err != nil {
		t.Fatalf("URL() failed: %v", err)
	}

	if first == second {
		t.Errorf("URL() unchanged after overwrite: %q", first)
	}
}

func TestURL_NotFound(t *testing.T) {
	sys, _ := startedSystem(t)

	_, err := sys.URL(context.Background(), "user-1/missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("URL() error = %v, want %v", err, storage.ErrNotFound)
	}
}
