package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatJSON(t *testing.T) {
	got, err := FormatJSON(map[string]any{"version": "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"version\": \"1.0.0\"\n}\n", got)

	got, err = FormatJSON(`  {"a":1}  `)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", got)

	got, err = FormatJSON("")
	require.NoError(t, err)
	assert.Equal(t, "null\n", got)

	_, err = FormatJSON("{not json")
	assert.Error(t, err)
}

func TestPrintJSONKeepsTokens(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, []byte(`{"port":3000,"h2c":false,"host":null,"name":"a \"b\""}`)))

	out := buf.String()
	for _, token := range []string{`"port"`, "3000", "false", "null", `"a \"b\""`} {
		assert.Contains(t, out, token)
	}
}

func TestClosingQuote(t *testing.T) {
	s := `"a\"b" : 1`
	assert.Equal(t, strings.Index(s, " :"), closingQuote(s, 0))
	assert.Equal(t, byte(':'), nextNonSpace(s, closingQuote(s, 0)))
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	err := PrintTable(&buf, []string{"field", "value"}, [][]string{{"version", "1.0.0"}}, 60)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "1.0.0")
}
