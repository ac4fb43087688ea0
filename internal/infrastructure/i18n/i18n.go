// Package i18n loads gettext catalogs for user-facing strings.
package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// ErrUnknownLanguage is returned when no catalog exists for a language.
var ErrUnknownLanguage = errors.New("unknown language")

// Catalog translates message IDs. Message IDs are the English text, so a
// missing translation falls back to readable output.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load parses <lang>.po from fsys.
func Load(fsys fs.FS, lang string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, lang+".po")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: lang, po: po}, nil
}

// Lang returns the catalog's language.
func (c *Catalog) Lang() string {
	if c == nil {
		return ""
	}
	return c.lang
}

// Get translates s and formats it with vars. A nil catalog only formats.
func (c *Catalog) Get(s string, vars ...any) string {
	if c == nil {
		if len(vars) == 0 {
			return s
		}
		return fmt.Sprintf(s, vars...)
	}
	return c.po.Get(s, vars...)
}

// Languages lists the catalogs in fsys.
func Languages(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".po" {
			continue
		}
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs, nil
}
