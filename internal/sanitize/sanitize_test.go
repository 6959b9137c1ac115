package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/code-analyzer/internal/langspec"
)

func TestSanitizeIdentityForNonTSX(t *testing.T) {
	src := []byte("if a && b { }")
	out, note := Sanitize(langspec.Go, src)
	require.Nil(t, note)
	assert.Same(t, &src[0], &out[0], "non-TSX languages must not copy")
}

func TestSanitizeEscapesBareAmpersandInText(t *testing.T) {
	src := []byte("<div>Tom & Jerry</div>")
	out, note := Sanitize(langspec.TSX, src)
	require.Nil(t, note)
	assert.Equal(t, "<div>Tom &amp; Jerry</div>", string(out))
}

func TestSanitizeLeavesAttributesAlone(t *testing.T) {
	src := []byte(`<a href="a&b">x</a>`)
	out, note := Sanitize(langspec.TSX, src)
	require.Nil(t, note)
	assert.Equal(t, string(src), string(out), "attribute text is InTag, must be untouched")
}

func TestSanitizeLeavesExpressionBracesAlone(t *testing.T) {
	src := []byte(`<div>{a && b}</div>`)
	out, note := Sanitize(langspec.TSX, src)
	require.Nil(t, note)
	assert.Equal(t, string(src), string(out))
}

func TestSanitizeNestedBracesInExpression(t *testing.T) {
	src := []byte(`<div>{ {a: 1, b: 2} }</div>`)
	out, note := Sanitize(langspec.TSX, src)
	require.Nil(t, note)
	assert.Equal(t, string(src), string(out))
}

func TestSanitizeLeavesWellFormedEntitiesAlone(t *testing.T) {
	src := []byte("<p>Price &amp; &#38; &#x26; tax</p>")
	out, note := Sanitize(langspec.TSX, src)
	require.Nil(t, note)
	assert.Equal(t, string(src), string(out))
}

func TestSanitizeNonUTF8(t *testing.T) {
	src := []byte{0xff, 0xfe, 0x00}
	_, note := Sanitize(langspec.Go, src)
	require.NotNil(t, note)
	assert.Contains(t, note.Message, "UTF-8")
}

func TestSanitizeNoChangeReturnsSameBacking(t *testing.T) {
	src := []byte("<div>no ampersands here</div>")
	out, note := Sanitize(langspec.TSX, src)
	require.Nil(t, note)
	assert.Same(t, &src[0], &out[0])
}
