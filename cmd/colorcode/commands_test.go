package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecu23/piece-color/internal/color"
	"github.com/tecu23/piece-color/pkg/binding"
)

func run(args ...string) (string, error) {
	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCodeCommand(t *testing.T) {
	out, err := run("code", "1", "2", "0", "99", "99999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, "w\nb\n-\n-\n-\n", out)
}

func TestCodeCommandRejectsNonInteger(t *testing.T) {
	_, err := run("code", "white")
	assert.ErrorIs(t, err, binding.ErrNotInteger)
}

func TestParseCommand(t *testing.T) {
	out, err := run("parse", "b")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = run("parse", "x")
	assert.ErrorIs(t, err, color.ErrUnknownCode)
}

func TestListCommand(t *testing.T) {
	out, err := run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "1             w")
	assert.Contains(t, out, "2             b")
}
