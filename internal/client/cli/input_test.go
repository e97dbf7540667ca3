package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  alice@example.com \nnext\n"))

	got, err := GetSimpleText(r, "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)
	assert.Equal(t, "Enter email\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("last"))
	got, err := GetSimpleText(r, "p", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "last", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	_, err := GetSimpleText(r, "p", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	_, err = GetPassword(io.Discard)
	assert.EqualError(t, err, "no tty")
}

func TestGetAmount(t *testing.T) {
	cases := map[string]float64{"100\n": 100, "-40\n": -40, "+2.5\n": 2.5, "-3,75\n": -3.75}
	for in, want := range cases {
		got, err := GetAmount(bufio.NewReader(strings.NewReader(in)), "Amount", io.Discard)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := GetAmount(bufio.NewReader(strings.NewReader("lots\n")), "Amount", io.Discard)
	assert.EqualError(t, err, `invalid amount "lots"`)
}
