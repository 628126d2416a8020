package server_test

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/JaimeStill/product-admin/internal/config"
	"github.com/JaimeStill/product-admin/internal/server"
	"github.com/JaimeStill/product-admin/pkg/lifecycle"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestServer_StartAndShutdown(t *testing.T) {
	port := freePort(t)
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: port}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lc := lifecycle.New()
	srv := server.New(cfg, handler, logger)
	if srv.Addr() != "" {
		t.Errorf("Addr() before Start = %q, want empty", srv.Addr())
	}
	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	want := "127.0.0.1:" + strconv.Itoa(port)
	if srv.Addr() != want {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), want)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

func TestServer_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: ln.Addr().(*net.TCPAddr).Port}
	cfg.Finalize()

	err = server.New(cfg, http.NotFoundHandler(), slog.New(slog.NewTextHandler(io.Discard, nil))).Start(lifecycle.New())
	if err == nil {
		t.Error("Start() succeeded on a bound port")
	}
}
