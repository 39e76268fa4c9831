package export

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/vango-dev/vdiff/internal/config"
	"github.com/vango-dev/vdiff/internal/errors"
)

func TestFileSink(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink, err := NewFileSink(fs, "/out")
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	loc, err := sink.Write(context.Background(), "pages/index.html", []byte("<p>hi</p>"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if loc != "/out/pages/index.html" {
		t.Errorf("location = %q", loc)
	}
	data, err := afero.ReadFile(fs, loc)
	if err != nil || string(data) != "<p>hi</p>" {
		t.Errorf("file = %q, %v", data, err)
	}
}

func TestFileSinkCancelled(t *testing.T) {
	sink, _ := NewFileSink(afero.NewMemMapFs(), "out")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sink.Write(ctx, "a.html", nil); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFileSinkReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if _, err := NewFileSink(fs, "out"); errors.Code(err) != "E501" {
		t.Errorf("err = %v, want E501", err)
	}
}

type fakeS3 struct {
	mu     sync.Mutex
	status int
	puts   map[string]string
	types  map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != 0 {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(f.status)
		io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
		return
	}
	if r.Method != http.MethodPut {
		http.Error(w, "unexpected method", http.StatusMethodNotAllowed)
		return
	}
	body, _ := io.ReadAll(r.Body)
	f.puts[r.URL.Path] = string(body)
	f.types[r.URL.Path] = r.Header.Get("Content-Type")
	w.Header().Set("ETag", `"abc"`)
	w.WriteHeader(http.StatusOK)
}

func newFakeS3(t *testing.T) (*fakeS3, *S3Sink) {
	t.Helper()
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	fake := &fakeS3{puts: map[string]string{}, types: map[string]string{}}
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)

	sink, err := NewS3SinkFromConfig(config.S3Config{
		Bucket:   "previews",
		Prefix:   "site/",
		Region:   "eu-west-1",
		Endpoint: ts.URL,
	})
	if err != nil {
		t.Fatalf("NewS3SinkFromConfig: %v", err)
	}
	return fake, sink
}

func TestS3Sink(t *testing.T) {
	fake, sink := newFakeS3(t)

	loc, err := sink.Write(context.Background(), "index.html", []byte("<h1>ok</h1>"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if loc != "s3://previews/site/index.html" {
		t.Errorf("location = %q", loc)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if got := fake.puts["/previews/site/index.html"]; got != "<h1>ok</h1>" {
		t.Errorf("uploaded %q (puts %v)", got, fake.puts)
	}
	if got := fake.types["/previews/site/index.html"]; !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestS3SinkErrors(t *testing.T) {
	t.Run("denied", func(t *testing.T) {
		fake, sink := newFakeS3(t)
		fake.mu.Lock()
		fake.status = http.StatusForbidden
		fake.mu.Unlock()
		if _, err := sink.Write(context.Background(), "a.html", []byte("x")); errors.Code(err) != "E501" {
			t.Errorf("err = %v, want E501", err)
		}
	})

	t.Run("no credentials", func(t *testing.T) {
		_, sink := newFakeS3(t)
		t.Setenv("AWS_ACCESS_KEY_ID", "")
		if _, err := sink.Write(context.Background(), "a.html", []byte("x")); errors.Code(err) != "E501" {
			t.Errorf("err = %v, want E501", err)
		}
	})

	t.Run("no bucket", func(t *testing.T) {
		if _, err := NewS3SinkFromConfig(config.S3Config{}); errors.Code(err) != "E122" {
			t.Errorf("err = %v, want E122", err)
		}
	})
}

func TestMulti(t *testing.T) {
	fs := afero.NewMemMapFs()
	a, _ := NewFileSink(fs, "/a")
	b, _ := NewFileSink(fs, "/b")

	loc, err := Multi{a, b}.Write(context.Background(), "x.html", []byte("x"))
	if err != nil || loc != "/a/x.html" {
		t.Fatalf("Write = %q, %v", loc, err)
	}
	if ok, _ := afero.Exists(fs, "/b/x.html"); !ok {
		t.Error("second sink was not written")
	}
}
