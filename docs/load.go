package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// Load reads every file directly under dir whose name ends in ext. Subdirectories are not descended into.
// Names listed in skip are left out even if they match: the generated artifact lives in the same directory.
func Load(dir, ext string, skip ...string) (Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	m := make(Map, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ext) || slices.Contains(skip, name) {
			continue
		}
		path := filepath.Join(dir, name)
		if isDir, err := resolvesToDir(e, path); err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		} else if isDir {
			continue
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		text, fellBack := Decode(b)
		if fellBack {
			zap.L().Debug("not valid utf-8: decoded as latin-1", zap.String("file", path))
		}
		m[name] = text
	}
	return m, nil
}

// Decode interprets b as UTF-8, falling back to ISO-8859-1 when it isn't valid UTF-8.
// latin-1 maps every byte to a rune, so Decode never fails; fellBack reports which decoding was used.
func Decode(b []byte) (text string, fellBack bool) {
	if utf8.Valid(b) {
		return string(b), false
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil { // unreachable for a single-byte charmap, but don't lose the document over it.
		return strings.ToValidUTF8(string(b), string(utf8.RuneError)), true
	}
	return string(out), true
}

// a symlink to a directory reports as a symlink, not a dir, so we have to follow it.
func resolvesToDir(e os.DirEntry, path string) (bool, error) {
	if e.IsDir() {
		return true, nil
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false, nil
	}
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return fi.IsDir(), nil
}
