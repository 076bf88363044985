package common

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePathURIRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	uri := FilePathToURI("/tmp/my project/main.zt")
	assert.Equal(t, "file:///tmp/my%20project/main.zt", uri)

	p, err := URIToFilePath(uri)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my project/main.zt", p)
}

func TestURIToFilePathDriveLetter(t *testing.T) {
	p, err := URIToFilePath("file:///C:/src/main.zt")
	require.NoError(t, err)
	assert.Equal(t, "C:/src/main.zt", FilePathClean(p))
}

func TestURIToFilePathRejectsOtherSchemes(t *testing.T) {
	_, err := URIToFilePath("https://example.com/main.zt")
	assert.ErrorContains(t, err, "unsupported scheme")
}

func TestFilePathClean(t *testing.T) {
	assert.Equal(t, "a/c", FilePathClean("a/b/../c/"))
}
