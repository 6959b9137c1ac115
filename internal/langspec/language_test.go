package langspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		path string
		want Language
	}{
		{"lib.rs", Rust},
		{"a.js", JavaScript},
		{"a.mjs", JavaScript},
		{"a.cjs", JavaScript},
		{"a.jsx", JavaScript},
		{"a.ts", TypeScript},
		{"a.tsx", TSX},
		{"m.py", Python},
		{"m.pyw", Python},
		{"M.java", Java},
		{"c.c", C},
		{"c.h", C},
		{"c.cpp", Cpp},
		{"c.cc", Cpp},
		{"c.cxx", Cpp},
		{"c.hpp", Cpp},
		{"c.hxx", Cpp},
		{"s.go", Go},
		{"README.md", Unsupported},
		{"noext", Unsupported},
		{"A.RS", Rust}, // extension match is case-insensitive
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.path))
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("main.go"))
	assert.False(t, IsSupported("notes.txt"))
}

func TestSpecExhaustive(t *testing.T) {
	for _, lang := range All() {
		spec := Spec(lang)
		require.NotNilf(t, spec, "missing LanguageSpec for %s", lang)
		assert.Equal(t, lang, spec.Language)
		assert.NotNil(t, spec.ControlFlowKinds)
		assert.NotNil(t, spec.CommentKinds)
		assert.NotNil(t, spec.NestingKinds)
	}
	assert.Nil(t, Spec(Unsupported))
}

func TestJavaHasNoFreeFunctions(t *testing.T) {
	spec := Spec(Java)
	assert.Empty(t, spec.FunctionKinds)
	assert.True(t, spec.MethodKinds.Contains("method_declaration"))
}

func TestContextResolvedMethodLanguages(t *testing.T) {
	for _, lang := range []Language{Rust, Python, Cpp} {
		spec := Spec(lang)
		assert.True(t, spec.ContextResolvedMethods, "%s should resolve methods by class-body context", lang)
	}
	for _, lang := range []Language{JavaScript, TypeScript, TSX, Java, Go} {
		spec := Spec(lang)
		assert.False(t, spec.ContextResolvedMethods, "%s distinguishes methods by node kind", lang)
	}
}

func TestParseLanguageName(t *testing.T) {
	lang, ok := ParseLanguageName("Python")
	assert.True(t, ok)
	assert.Equal(t, Python, lang)

	_, ok = ParseLanguageName("cobol")
	assert.False(t, ok)
}
