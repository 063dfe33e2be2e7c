package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFmt_PrintsCanonicalSource(t *testing.T) {
	path := writeSource(t, `def add(a:int,b:int):int{return a+b}`)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	require.NoError(t, runFmt(path))
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "def add(a: int, b: int): int {")
	assert.Contains(t, buf.String(), "return a + b")
}

func TestRunFmt_PropagatesCheckError(t *testing.T) {
	path := writeSource(t, `def f(): int { return 1.0 }`)
	err := runFmt(path)
	assert.Error(t, err)
}

func TestEmitC_WritesCFileAlongsideSource(t *testing.T) {
	path := writeSource(t, `def add(a: int, b: int): int { return a + b }`)
	cPath, err := emitC(path)
	require.NoError(t, err)
	assert.Equal(t, path+".c", cPath)

	text, err := os.ReadFile(cPath)
	require.NoError(t, err)
	assert.Contains(t, string(text), "int add(int a, int b)")
}
