package asset

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := Open(thisFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatal("expected local file to not be reported as remote")
	}
}

func TestLocalRelativeResource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scene.toml"), []byte("name = 'x'"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "shaders"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shaders", "flat.frag"), []byte("#version 330"), 0644); err != nil {
		t.Fatal(err)
	}

	parent, err := Open(filepath.Join(dir, "scene.toml"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer parent.Close()

	data, err := Load("shaders/flat.frag", parent)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "#version 330" {
		t.Fatalf("expected shader contents; got %q", string(data))
	}
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := Open(fetchUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()
	if !res.IsRemote() {
		t.Fatal("expected http resource to be reported as remote")
	}

	fetchUrl = server.URL + "/file-not-found.foo"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = Open(fetchUrl, nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestRelativeRemoteResources(t *testing.T) {
	serverHits := 0
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits++
		if r.URL.Path == "/scenes/bounce.toml" {
			w.Write([]byte("OK"))
		} else if r.URL.Path == "/scenes/shaders/bounce.vert" {
			w.Write([]byte("VERT"))
		} else {
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	parent, err := Open(server.URL+"/scenes/bounce.toml", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer parent.Close()

	data, err := Load("shaders/bounce.vert", parent)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "VERT" {
		t.Fatalf("expected VERT; got %q", string(data))
	}

	if serverHits != 2 {
		t.Fatalf("expected server to receive 2 requests; got %d", serverHits)
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := Open("gopher://digging.go", nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestOversizedResource(t *testing.T) {
	res := FromStream("embedded", strings.NewReader(strings.Repeat("x", maxResourceSize+1)))
	_, err := ReadAll(res)
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("expected size limit error; got %v", err)
	}
}

func TestStreamResource(t *testing.T) {
	res := FromStream("embedded", strings.NewReader("payload"))
	data, err := ReadAll(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" || res.Path() != "embedded" {
		t.Fatalf("unexpected stream resource contents %q at %q", string(data), res.Path())
	}
}

func TestRelativeToStreamResource(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	type spec struct {
		streamName string
		expPath    string
	}
	specs := []spec{
		{"", filepath.Join(cwd, "shaders", "move.vert")},
		{"inline.toml", filepath.Join(cwd, "shaders", "move.vert")},
		{"scenes/inline.toml", filepath.Join(cwd, "scenes", "shaders", "move.vert")},
	}

	for index, s := range specs {
		target, err := resolve("shaders/move.vert", FromStream(s.streamName, strings.NewReader("")))
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if target.Path != s.expPath {
			t.Fatalf("[spec %d] expected path %q; got %q", index, s.expPath, target.Path)
		}
	}
}
