// Package library holds the built-in libraries and resolves imports of
// local source files.
package library

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vic/golam/pkg/lambda"
)

//go:embed lib
var libFS embed.FS

// Library is a built-in source snippet importable by name.
type Library struct {
	Name   string `yaml:"name"`
	Doc    string `yaml:"doc"`
	File   string `yaml:"file"`
	Source string `yaml:"-"`
}

type manifest struct {
	Libraries []*Library `yaml:"libraries"`
}

// Directory lists the built-in libraries in manifest order.
var Directory = mustLoad(libFS)

func mustLoad(fsys fs.FS) []*Library {
	libs, err := load(fsys)
	if err != nil {
		panic(err)
	}
	return libs
}

func load(fsys fs.FS) ([]*Library, error) {
	data, err := fs.ReadFile(fsys, "lib/libraries.yaml")
	if err != nil {
		return nil, fmt.Errorf("library: read manifest: %w", err)
	}
	var m manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("library: parse manifest: %w", err)
	}
	for _, lib := range m.Libraries {
		src, err := fs.ReadFile(fsys, "lib/"+lib.File)
		if err != nil {
			return nil, fmt.Errorf("library: %s: %w", lib.Name, err)
		}
		lib.Source = string(src)
	}
	return m.Libraries, nil
}

// Lookup returns the built-in library called name, or nil.
func Lookup(name string) *Library {
	for _, lib := range Directory {
		if lib.Name == name {
			return lib
		}
	}
	return nil
}

// Resolver implements syntax.Importer over the built-in libraries and the
// local file system.
type Resolver struct {
	// Path lists extra directories searched for imported files, after the
	// importing file's own directory.
	Path []string
	// ReadFile defaults to os.ReadFile.
	ReadFile func(string) ([]byte, error)
}

func NewResolver(path []string) *Resolver {
	return &Resolver{Path: path, ReadFile: os.ReadFile}
}

func (r *Resolver) Library(name string) (string, error) {
	lib := Lookup(name)
	if lib == nil {
		return "", lambda.Importf("%s is not a native library", name)
	}
	return lib.Source, nil
}

func (r *Resolver) File(name, from string) (string, string, error) {
	read := r.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	dirs := append([]string{from}, r.Path...)
	if filepath.IsAbs(name) {
		dirs = []string{""}
	}
	for _, dir := range dirs {
		path := filepath.Clean(filepath.Join(dir, name))
		data, err := read(path)
		if err == nil {
			return path, string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", "", lambda.Importf("%s could not be read", name).Wrap(err)
		}
	}
	return "", "", lambda.Importf("%s not found in local directory", name)
}
