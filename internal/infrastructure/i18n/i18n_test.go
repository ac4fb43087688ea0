package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const koPo = `msgid ""
msgstr ""
"Language: ko\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "This is the menu state!"
msgstr "메뉴 화면입니다!"

msgid "Bodies: %d"
msgstr "물체: %d"
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"ko.po":     {Data: []byte(koPo)},
		"en.po":     {Data: []byte("msgid \"\"\nmsgstr \"\"\n")},
		"README.md": {Data: []byte("not a catalog")},
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(testFS(), "ko")
	require.NoError(t, err)

	assert.Equal(t, "ko", c.Lang())
	assert.Equal(t, "메뉴 화면입니다!", c.Get("This is the menu state!"))
	assert.Equal(t, "물체: 3", c.Get("Bodies: %d", 3))
	assert.Equal(t, "Untranslated", c.Get("Untranslated"))
}

func TestLoad_UnknownLanguage(t *testing.T) {
	_, err := Load(testFS(), "de")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestCatalog_NilFormatsOnly(t *testing.T) {
	var c *Catalog
	assert.Equal(t, "", c.Lang())
	assert.Equal(t, "plain", c.Get("plain"))
	assert.Equal(t, "Bodies: 2", c.Get("Bodies: %d", 2))
}

func TestLanguages(t *testing.T) {
	langs, err := Languages(testFS())
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ko"}, langs)
}
