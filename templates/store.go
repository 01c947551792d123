// Package templates provides the fixed source fragments spliced into the
// generated package objects, such as the license header and the hand written
// extensions of Vertx and Message.
package templates

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Fragment names used by the generator
const (
	LicenseHeader   = "extensions/LicenseHeader.ftl"
	Json            = "extensions/Json.ftl"
	Message         = "extensions/Message.ftl"
	Vertx           = "extensions/Vertx.ftl"
	VertxObject     = "extensions/VertxObject.ftl"
	ExecuteBlocking = "extensions/executeblocking.ftl"
)

// ErrMissingTemplate is returned when a fragment does not exist
var ErrMissingTemplate = errors.New("missing template")

// Lookup returns the text of a named fragment
type Lookup interface {
	Fragment(name string) (string, error)
}

//go:embed templates/*
var builtin embed.FS

// Builtin returns the fragments shipped with the generator
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

const cacheSize = 64

// Store reads fragments from a file system, by their path relative to its root.
// Fragments are cached once read, so a Store may be shared between goroutines.
type Store struct {
	fsys  fs.FS
	cache *lru.Cache[string, string]
}

// NewStore creates a store over fsys
func NewStore(fsys fs.FS) (*Store, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{fsys: fsys, cache: cache}, nil
}

// Fragment implements Lookup. Every line of the result, including the last,
// is terminated by a single "\n".
func (s *Store) Fragment(name string) (string, error) {
	if cached, ok := s.cache.Get(name); ok {
		return cached, nil
	}

	file, err := s.fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrapf(ErrMissingTemplate, "%s", name)
	} else if err != nil {
		return "", errors.Wrapf(err, "opening template %s", name)
	}
	defer file.Close()

	var text strings.Builder
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		text.WriteString(scanner.Text())
		text.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "reading template %s", name)
	}

	s.cache.Add(name, text.String())
	return text.String(), nil
}

// MapLookup serves fragments from memory
type MapLookup map[string]string

// Fragment implements Lookup
func (m MapLookup) Fragment(name string) (string, error) {
	text, ok := m[name]
	if !ok {
		return "", errors.Wrapf(ErrMissingTemplate, "%s", name)
	}
	return text, nil
}
