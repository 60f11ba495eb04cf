package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ImageStore guarda imágenes de producto bajo un directorio raíz local.
// En la DB se persiste solo el nombre de archivo; servir el archivo de vuelta
// es responsabilidad del static handler (/uploads).
type ImageStore struct {
	root string
}

// NewImageStore crea el directorio raíz si no existe.
func NewImageStore(root string) (*ImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &ImageStore{root: root}, nil
}

// Root devuelve el directorio raíz (para montar el static handler).
func (s *ImageStore) Root() string {
	return s.root
}

// Save escribe el contenido bajo el root con un nombre seguro y único, y
// devuelve el nombre de archivo persistible.
func (s *ImageStore) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + "_" + SecureFilename(originalName)
	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("crear archivo de imagen: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	return name, nil
}

// SecureFilename deriva un nombre de archivo seguro para el filesystem:
// descompone acentos y descarta las marcas diacríticas, bota separadores de
// ruta y deja solo [A-Za-z0-9._-]. Nunca devuelve vacío.
func SecureFilename(name string) string {
	// NFD + eliminación de marcas no-espaciantes: "café.png" -> "cafe.png"
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	folded = filepath.Base(folded)
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "file"
	}
	return out
}
