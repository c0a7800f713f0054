/*
File    : rpal/cmd/rpal/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = orig
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.rpal")
	require.NoError(t, err)
	_, err = f.WriteString(src)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestRunFile_PrintsProgramOutput(t *testing.T) {
	path := writeTempSource(t, `let x = 5 in Print(x+3)`)
	var code int
	out := captureStdout(t, func() {
		code = runFile(path, false, false)
	})
	assert.Equal(t, 0, code)
	assert.Equal(t, "8", out)
}

func TestRunFile_AstFlagPrintsDottedTree(t *testing.T) {
	path := writeTempSource(t, `Print(1)`)
	var code int
	out := captureStdout(t, func() {
		code = runFile(path, true, false)
	})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "gamma")
}

func TestRunFile_StFlagPrintsStandardizedTree(t *testing.T) {
	path := writeTempSource(t, `let x = 1 in Print(x)`)
	var code int
	out := captureStdout(t, func() {
		code = runFile(path, false, true)
	})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "lambda")
}

func TestRunFile_MissingFileReturnsNonzeroExit(t *testing.T) {
	code := runFile("/nonexistent/path/to/source.rpal", false, false)
	assert.NotEqual(t, 0, code)
}

func TestRunFile_SyntaxErrorReturnsNonzeroExit(t *testing.T) {
	path := writeTempSource(t, `let x = in Print(x)`)
	code := runFile(path, false, false)
	assert.NotEqual(t, 0, code)
}

func TestRunFile_RuntimeErrorReturnsNonzeroExit(t *testing.T) {
	path := writeTempSource(t, `Print(nope)`)
	code := runFile(path, false, false)
	assert.NotEqual(t, 0, code)
}
