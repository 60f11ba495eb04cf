package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kape-pos-api/internal/infrastructure/storage"
)

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"latte.png":           "latte.png",
		"café con leche.png":  "cafe_con_leche.png",
		"../../etc/passwd":    "passwd",
		"  ":                  "file",
		"ñandú-ärt.JPG":       "nandu-art.JPG",
		"weird$$name!!.jpeg":  "weirdname.jpeg",
	}
	for in, want := range cases {
		assert.Equal(t, want, storage.SecureFilename(in), "entrada: %q", in)
	}
}

func TestImageStore_SaveEscribeBajoElRoot(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewImageStore(root)
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("fake-png-bytes"), "café.png")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, "_cafe.png"), "nombre inesperado: %s", name)
	assert.NotContains(t, name, "/")

	data, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestImageStore_NombresUnicosParaElMismoArchivo(t *testing.T) {
	store, err := storage.NewImageStore(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save(strings.NewReader("a"), "latte.png")
	require.NoError(t, err)
	b, err := store.Save(strings.NewReader("b"), "latte.png")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "dos uploads del mismo nombre no deben pisarse")
}
