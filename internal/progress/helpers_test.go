package progress

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ultrakill-save-editor/pkg/nrbf"
)

func encodeClass(t *testing.T, className string, fields *nrbf.FieldMap) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, nrbf.Encode(&buf, &nrbf.Class{LibraryName: LibraryName, Name: className, Fields: fields}))
	return buf.Bytes()
}

func writeRaw(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func readClassFile(t *testing.T, dir, name string) *nrbf.Class {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	c, err := nrbf.Decode(f)
	require.NoError(t, err)
	return c
}

func asClass(className string, fields *nrbf.FieldMap) *nrbf.Class {
	return &nrbf.Class{LibraryName: LibraryName, Name: className, Fields: fields}
}

func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
