package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Upper bound for the size of a single scene or shader resource.
const maxResourceSize = 1 << 20

// Client used for fetching remote resources.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// A Resource wraps a readable local file or remote document. Scene files and
// the shader sources they reference are loaded through this type.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Open a resource. If relTo is specified and pathToResource does not define a
// scheme and is not absolute, the new resource is resolved against the
// directory containing relTo.
//
// The caller must close the returned resource.
func Open(pathToResource string, relTo *Resource) (*Resource, error) {
	target, err := resolve(pathToResource, relTo)
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch target.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(target.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := httpClient.Get(target.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", target.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", target.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", target.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        target,
	}, nil
}

// Create a resource from a reader. Relative paths resolved against the
// returned resource use name as the base.
func FromStream(name string, source io.Reader) *Resource {
	target, err := url.Parse(filepath.ToSlash(name))
	if err != nil {
		target = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        target,
	}
}

// Open a resource, read its contents and close it.
func Load(pathToResource string, relTo *Resource) ([]byte, error) {
	res, err := Open(pathToResource, relTo)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return ReadAll(res)
}

// Read the remaining resource contents, rejecting oversized payloads.
func ReadAll(res *Resource) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(res, maxResourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("resource: could not read '%s': %s", res.Path(), err)
	}
	if len(data) > maxResourceSize {
		return nil, fmt.Errorf("resource: '%s' exceeds the %d byte limit", res.Path(), maxResourceSize)
	}
	return data, nil
}

func resolve(pathToResource string, relTo *Resource) (*url.URL, error) {
	// Windows paths use backslashes; normalize them before parsing as a URL
	target, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	if target.Scheme != "" || relTo == nil || filepath.IsAbs(target.Path) {
		return target, nil
	}

	base := *relTo.url
	if base.Scheme != "" {
		base.Path = path.Join(path.Dir(base.Path), target.Path)
		base.RawQuery = ""
		return &base, nil
	}

	// Nameless streams resolve against the working directory.
	dir := "."
	if base.Path != "" {
		dir = filepath.Dir(base.Path)
	}
	prefix, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resource: could not detect abs path for %s; %s", base.String(), err.Error())
	}
	return &url.URL{Path: filepath.Join(prefix, target.Path)}, nil
}
