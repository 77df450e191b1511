package serve

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iamochuko/contract-source-metadata/pkg/sourcemeta"
)

func TestServerServesUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	srv := &Server{
		Handler:         NewRouter(sourcemeta.Static(sourcemeta.New("v", "l")), nil),
		Logger:          log.New(io.Discard),
		ShutdownTimeout: time.Second,
	}

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + MetadataPath)
	if err != nil {
		cancel()
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != `{"version":"v","link":"l"}` {
		t.Errorf("body = %s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	srv := &Server{Addr: "256.0.0.1:bad", Handler: NewRouter(nil, nil), Logger: log.New(io.Discard)}
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Error("ListenAndServe() expected error for bad address")
	}
}
