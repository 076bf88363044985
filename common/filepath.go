package common

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// FilePathClean cleans p and normalises separators to '/', so paths read
// from disk and paths decoded from editor URIs compare equal.
//
//	C:\H\ -> C:/H
func FilePathClean(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// FilePathToURI returns the file:// URI of an absolute path.
func FilePathToURI(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// drive letter: file:///C:/path
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// URIToFilePath converts a file:// URI into an absolute OS path.
func URIToFilePath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid URI: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported scheme %q (must be file)", u.Scheme)
	}
	p := u.Path
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}
