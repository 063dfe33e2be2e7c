package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.ftl")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestFrontend_WellTypedProgram(t *testing.T) {
	path := writeSource(t, `def add(a: int, b: int): int { return a + b }`)
	nodes, err := frontend(path)
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestFrontend_RendersParseErrorWithSourceExcerpt(t *testing.T) {
	path := writeSource(t, `def f(a: int int) { }`)
	_, err := frontend(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "program.ftl")
}

func TestFrontend_RendersTypeCheckError(t *testing.T) {
	path := writeSource(t, `def f(): int { return 1.0 }`)
	_, err := frontend(path)
	require.Error(t, err)
}

func TestFrontend_MissingFileIsAPlainError(t *testing.T) {
	_, err := frontend(filepath.Join(t.TempDir(), "does-not-exist.ftl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read")
}
