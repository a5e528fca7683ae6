package filter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	doc := `
id: "42"
name: register
enabled: true
pattern: |
  def username(self, stream):
      return True
subscribers: [logger]
labels:
  team: red
`
	f, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, Filter{
		ID:          "42",
		Name:        "register",
		Enabled:     true,
		Pattern:     "def username(self, stream):\n    return True\n",
		Subscribers: []string{"logger"},
		Labels:      map[string]string{"team": "red"},
	}, f)
}

func TestDecode_MissingPatternIsEmpty(t *testing.T) {
	f, err := Decode(strings.NewReader("id: a\nenabled: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "", f.Pattern)
	assert.Equal(t, "", f.InitialText())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Decode(strings.NewReader("id: [unterminated"))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestEncodeDecode_PreservesMultilinePattern(t *testing.T) {
	in := Filter{ID: "7", Pattern: "if a:\n    return True\n", Enabled: true}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in))

	out, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
