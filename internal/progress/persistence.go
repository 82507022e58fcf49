package progress

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"ultrakill-save-editor/pkg/nrbf"
)

// Option configures Load and Save.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes persistence logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// readClass decodes one save file and checks it holds the expected class.
func readClass(path, className string) (*nrbf.Class, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := nrbf.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if c.Name != className {
		return nil, fmt.Errorf("%s: %w %q, want %q", path, ErrClassName, c.Name, className)
	}
	return c, nil
}

// writeClass encodes fields in memory first so a failed encode never leaves
// a truncated file behind.
func writeClass(path, className string, fields *nrbf.FieldMap) error {
	var buf bytes.Buffer
	class := &nrbf.Class{LibraryName: LibraryName, Name: className, Fields: fields}
	if err := nrbf.Encode(&buf, class); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func removeFile(path string) (bool, error) {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove %s: %w", path, err)
	}
	return true, nil
}

// load never fails: anything short of a fully parsed record yields the default.
func (d document[T]) load(dir string, o *options) T {
	path := filepath.Join(dir, d.fileName)
	c, err := readClass(path, d.className)
	if err == nil {
		var rec T
		if rec, err = d.parse(c); err == nil {
			return rec
		}
	}
	logDefault(o.logger, path, err)
	return d.create()
}

func (d document[T]) save(dir string, rec T, o *options) error {
	path := filepath.Join(dir, d.fileName)
	return persist(path, d.className, rec.HasFile(), rec.Unparse, o)
}

func (f family[K, T]) load(dir string, o *options) map[K]T {
	out := make(map[K]T)
	for _, key := range f.variants() {
		path := filepath.Join(dir, f.fileName(key))
		c, err := readClass(path, f.className)
		if err == nil {
			var rec T
			if rec, err = f.parse(c, key); err == nil {
				out[key] = rec
				continue
			}
		}
		logDefault(o.logger, path, err)
		out[key] = f.create(key)
	}
	return out
}

// save walks the in-memory mapping, not the catalog, in key order.
func (f family[K, T]) save(dir string, recs map[K]T, o *options) error {
	for _, key := range slices.Sorted(maps.Keys(recs)) {
		rec := recs[key]
		path := filepath.Join(dir, f.fileName(key))
		unparse := func() (*nrbf.FieldMap, error) { return rec.Unparse(key) }
		if err := persist(path, f.className, rec.HasFile(), unparse, o); err != nil {
			return err
		}
	}
	return nil
}

func persist(path, className string, exists bool, unparse func() (*nrbf.FieldMap, error), o *options) error {
	if !exists {
		removed, err := removeFile(path)
		if removed {
			o.logger.Info("removed save file", zap.String("path", path))
		}
		return err
	}
	fields, err := unparse()
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := writeClass(path, className, fields); err != nil {
		return err
	}
	o.logger.Info("wrote save file", zap.String("path", path), zap.String("class", className))
	return nil
}

func logDefault(l *zap.Logger, path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		l.Debug("save file absent, using defaults", zap.String("path", path))
		return
	}
	l.Debug("save file unreadable, using defaults", zap.String("path", path), zap.Error(err))
}
