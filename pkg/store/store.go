// Package store persists the full collection of sync groups in a single
// per-user file. The whole collection is loaded at startup, mutated in
// memory, and rewritten atomically on save; there is no incremental
// persistence. Concurrent invocations against the same store file aren't
// coordinated: the last writer wins.
package store

import (
	"os"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/Theomat/rusync/pkg/errors"
	"github.com/Theomat/rusync/pkg/group"
)

// DefaultStorePath is the default per-user location of the sync store.
const DefaultStorePath = "~/.rusync"

const (
	// InitialStoreVersion is the version assumed for store files that
	// don't declare one.
	InitialStoreVersion = "v1alpha1"

	// SupportedStoreVersion is the store schema version written and
	// understood by the current binary.
	SupportedStoreVersion = "v1alpha1"
)

// parseStoreErrTemplate is shown when the store file can't be parsed. The
// store is the sole source of truth for group membership, so garbled
// content is never guessed at; the yaml library's error is passed on as-is
// because it loses context we can't recover.
const parseStoreErrTemplate = "The sync store at %q could not be parsed.\n" +
	"Refusing to continue rather than risk syncing the wrong files.\n\n" +
	"For reference, here is the error from the parser:\n" +
	"%s"

// fs is used for mock tests. It will be overridden by afero.NewMemMapFs()
// in the tests.
var fs = afero.NewOsFs()

// homedirExpand will be overridden in mock tests.
var homedirExpand = homedir.Expand

// Store reads and writes the persisted group collection at a fixed path.
type Store struct {
	path string
}

// New returns a store persisted at path. The path is an explicit argument
// rather than being resolved internally so that tests (and future callers)
// can point the store anywhere.
func New(path string) Store {
	return Store{path: path}
}

// DefaultPath returns the expanded per-user store path.
func DefaultPath() (string, error) {
	return homedirExpand(DefaultStorePath)
}

// schema is the on-disk representation of the collection.
type schema struct {
	Version string        `json:"version,omitempty"`
	Groups  []group.Group `json:"groups,omitempty"`
}

// Load reads the persisted collection. On first run the store file doesn't
// exist yet, so an empty collection is persisted and read back. Files
// written by old releases in the flat separator format are decoded via the
// legacy parser and migrate to the current schema on the next save. Any
// other failure is returned to the caller, which should treat it as fatal.
func (s Store) Load() (group.Collection, error) {
	data, err := s.read()
	if err != nil {
		if _, ok := err.(errors.FileNotFound); !ok {
			return nil, err
		}

		if err := s.Save(nil); err != nil {
			return nil, errors.WithContext(err, "bootstrap store")
		}
		if data, err = s.read(); err != nil {
			return nil, err
		}
	}

	if isLegacy(data) {
		return decodeLegacy(string(data)), nil
	}

	parsed := schema{Version: InitialStoreVersion}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.NewFriendlyError(parseStoreErrTemplate, s.path, err)
	}

	if parsed.Version != SupportedStoreVersion {
		return nil, incompatibleVersionError{
			path:   s.path,
			exp:    SupportedStoreVersion,
			actual: parsed.Version,
		}
	}

	// Do a strict unmarshal to catch extra fields, after the version check
	// so that incompatible versions get the clearer error.
	if err := yaml.UnmarshalStrict(data, &parsed, yaml.DisallowUnknownFields); err != nil {
		return nil, errors.NewFriendlyError(parseStoreErrTemplate, s.path, err)
	}
	return group.Collection(parsed.Groups), nil
}

// Save serializes the collection and atomically replaces the store file,
// so that a crash mid-write can't leave a truncated store behind.
func (s Store) Save(collection group.Collection) error {
	out, err := yaml.Marshal(schema{
		Version: SupportedStoreVersion,
		Groups:  collection,
	})
	if err != nil {
		return errors.WithContext(err, "marshal store")
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(fs, tmp, out, 0644); err != nil {
		return errors.WithContext(err, "write store")
	}
	if err := fs.Rename(tmp, s.path); err != nil {
		return errors.WithContext(err, "replace store")
	}
	return nil
}

// read returns the store file's contents, reporting a missing file as
// errors.FileNotFound so that Load can distinguish "first run" from an
// I/O failure.
func (s Store) read() ([]byte, error) {
	data, err := afero.ReadFile(fs, s.path)
	if err != nil {
		if isPathNotFoundError(err) {
			return nil, errors.FileNotFound{Path: s.path}
		}
		return nil, errors.WithContext(err, "read store")
	}
	return data, nil
}

type incompatibleVersionError struct {
	path, exp, actual string
}

func (err incompatibleVersionError) Error() string {
	return err.FriendlyMessage()
}

func (err incompatibleVersionError) FriendlyMessage() string {
	return "The sync store " + err.path + " is incompatible " +
		"with this version of rusync.\n" +
		"Expected version " + err.exp + ", but got " + err.actual + "."
}

func isPathNotFoundError(err error) bool {
	if os.IsNotExist(err) {
		return true
	}

	// afero's in-memory filesystem reports missing files with its own
	// sentinel rather than the os error.
	if pathErr, ok := err.(*os.PathError); ok && pathErr.Err == afero.ErrFileNotFound {
		return true
	}
	return false
}
