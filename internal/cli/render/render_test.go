package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const usersPage = `{
	"content": [
		{"id": 1, "name": "Ada", "email": "ada@playera.lk", "isActive": true, "permissions": ["all"]},
		{"id": 2, "name": "Bob", "email": "bob@playera.lk", "isActive": false, "phone": null}
	],
	"totalElements": 42,
	"totalPages": 3,
	"size": 20,
	"number": 1,
	"first": false,
	"last": false
}`

var userColumns = []Column{Col("ID", "id"), Col("NAME", "name"), Col("ACTIVE", "isActive"), Col("PHONE", "phone")}

func TestParseFormat(t *testing.T) {
	for input, expected := range map[string]Format{"": FormatTable, "table": FormatTable, "JSON": FormatJSON, "yaml": FormatYAML} {
		f, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, f)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `invalid output format "xml"`)
}

func TestList_TablePaginated(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(&out, FormatTable).List(json.RawMessage(usersPage), userColumns, "No users found."))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"ID", "NAME", "ACTIVE", "PHONE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "Ada", "true", "-"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"2", "Bob", "false", "-"}, strings.Fields(lines[3]))
	assert.Equal(t, "Page 2 of 3 (42 total)", lines[5])
}

func TestList_TableBareArray(t *testing.T) {
	var out bytes.Buffer
	data := json.RawMessage(`[{"id": 7, "name": "Arena"}]`)
	require.NoError(t, New(&out, FormatTable).List(data, []Column{Col("ID", "id"), Col("NAME", "name")}, "none"))

	assert.Contains(t, out.String(), "Arena")
	assert.NotContains(t, out.String(), "Page")
}

func TestList_Empty(t *testing.T) {
	var out bytes.Buffer
	data := json.RawMessage(`{"content": [], "totalElements": 0, "totalPages": 0, "number": 0}`)
	require.NoError(t, New(&out, FormatTable).List(data, userColumns, "No users found."))

	assert.Equal(t, "No users found.\n", out.String())
}

func TestList_JSONPassesBodyThrough(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(&out, FormatJSON).List(json.RawMessage(usersPage), userColumns, ""))

	assert.JSONEq(t, usersPage, out.String())
}

func TestList_YAMLKeepsKeyOrder(t *testing.T) {
	var out bytes.Buffer
	data := json.RawMessage(`{"name": "Ada", "id": 1, "code": "true", "tags": ["a", "b"]}`)
	require.NoError(t, New(&out, FormatYAML).List(data, nil, ""))

	expected := "name: Ada\nid: 1\ncode: \"true\"\ntags:\n  - a\n  - b\n"
	assert.Equal(t, expected, out.String())
}

func TestRecord_Table(t *testing.T) {
	var out bytes.Buffer
	data := json.RawMessage(`{"id": 5, "name": "Court One", "owner": {"name": "Ravi"}}`)
	err := New(&out, FormatTable).Record(data, []Column{Col("ID", "id"), Col("Owner", "owner.name"), Col("Approved", "isApproved")})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID:", "5"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Owner:", "Ravi"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Approved:", "-"}, strings.Fields(lines[2]))
}

func TestRaw_TableIndentsJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(&out, FormatTable).Raw(json.RawMessage(`{"a":1}`)))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())
}

func TestResult(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(&out, FormatTable).Result(json.RawMessage(`{"id":1}`), "✓ User 1 deactivated"))
	assert.Equal(t, "✓ User 1 deactivated\n", out.String())

	out.Reset()
	require.NoError(t, New(&out, FormatJSON).Result(nil, "ignored"))
	assert.Empty(t, out.String())

	out.Reset()
	require.NoError(t, New(&out, FormatJSON).Result(json.RawMessage(`{"id":1}`), "ignored"))
	assert.JSONEq(t, `{"id":1}`, out.String())
}

func TestCell(t *testing.T) {
	doc := `{"s": "x", "empty": "", "n": 3.5, "b": false, "null": null, "list": [1, 2], "none": []}`
	tests := map[string]string{
		"s":       "x",
		"empty":   "-",
		"n":       "3.5",
		"b":       "false",
		"null":    "-",
		"list":    "1,2",
		"none":    "-",
		"missing": "-",
	}
	for path, expected := range tests {
		assert.Equal(t, expected, Cell(gjson.Get(doc, path)), path)
	}
}
