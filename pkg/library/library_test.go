package library

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/golam/pkg/lambda"
)

func TestDirectory(t *testing.T) {
	var names []string
	for _, lib := range Directory {
		names = append(names, lib.Name)
		assert.NotEmpty(t, lib.Doc, lib.Name)
		assert.NotEmpty(t, lib.Source, lib.Name)
	}
	assert.Equal(t, []string{"bool", "math", "stdlib"}, names)
}

func TestLookup(t *testing.T) {
	lib := Lookup("bool")
	require.NotNil(t, lib)
	assert.Contains(t, lib.Source, "let true")
	assert.Contains(t, lib.Source, "let false")

	math := Lookup("math")
	require.NotNil(t, math)
	for _, def := range []string{"let succ", "let pred", "let add"} {
		assert.Contains(t, math.Source, def)
	}

	assert.Nil(t, Lookup("num"))
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"lib/libraries.yaml": {Data: []byte("libraries:\n  - name: x\n    file: x.lc\n    author: me\n")},
		"lib/x.lc":           {Data: []byte("let x = x;")},
	}
	_, err := load(fsys)
	assert.Error(t, err)
}

func TestLoadMissingSource(t *testing.T) {
	fsys := fstest.MapFS{
		"lib/libraries.yaml": {Data: []byte("libraries:\n  - name: x\n    file: x.lc\n")},
	}
	_, err := load(fsys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestResolverLibrary(t *testing.T) {
	r := NewResolver(nil)
	src, err := r.Library("stdlib")
	require.NoError(t, err)
	assert.Contains(t, src, "import bool;")

	_, err = r.Library("foo")
	assert.EqualError(t, err, "IMPORT ERROR: foo is not a native library")
}

func TestResolverFile(t *testing.T) {
	local := t.TempDir()
	shared := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(local, "a.lc"), []byte("let a = x;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(shared, "a.lc"), []byte("let a = y;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(shared, "b.lc"), []byte("let b = z;"), 0o644))

	r := NewResolver([]string{shared})

	path, src, err := r.File("a.lc", local)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(local, "a.lc"), path)
	assert.Equal(t, "let a = x;", src)

	path, src, err = r.File("b.lc", local)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(shared, "b.lc"), path)
	assert.Equal(t, "let b = z;", src)

	_, _, err = r.File("c.lc", local)
	assert.EqualError(t, err, "IMPORT ERROR: c.lc not found in local directory")
}

func TestResolverReadFailure(t *testing.T) {
	boom := errors.New("boom")
	r := &Resolver{ReadFile: func(string) ([]byte, error) { return nil, boom }}

	_, _, err := r.File("a.lc", ".")
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	var lerr *lambda.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, lambda.ImportError, lerr.Kind)
	assert.Equal(t, "IMPORT ERROR: a.lc could not be read", err.Error())
}
