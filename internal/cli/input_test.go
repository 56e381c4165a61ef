package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetTextOr(t *testing.T) {
	var out bytes.Buffer
	r := rdr("\nnew\n")

	got, err := GetTextOr(r, "Vendor", "ACME", &out)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got)

	got, err = GetTextOr(r, "Vendor", "ACME", &out)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
	assert.Contains(t, out.String(), "Vendor [ACME]")
}

func TestGetPrice(t *testing.T) {
	var out bytes.Buffer
	r := rdr("1.234,50\nabc\n")

	p, err := GetPrice(r, "Price", &out)
	require.NoError(t, err)
	assert.InDelta(t, 1234.5, p, 1e-9)

	_, err = GetPrice(r, "Price", &out)
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}

func TestGetID(t *testing.T) {
	var out bytes.Buffer
	r := rdr("42\nx\n0\n")

	id, err := GetID(r, "Id", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = GetID(r, "Id", &out)
	assert.ErrorIs(t, err, common.ErrInvalidFormat)

	_, err = GetID(r, "Id", &out)
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"sim\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}
	for _, tc := range tests {
		t.Run(strings.TrimSpace(tc.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(rdr(tc.input), "Delete?", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
