package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lawXML = `<?xml version="1.0" encoding="UTF-8"?>
<Law><LawBody><MainProvision>
<TableStruct>
  <TableStructTitle>別表</TableStructTitle>
  <Table>
    <TableRow><TableColumn>区分</TableColumn><TableColumn>金額</TableColumn></TableRow>
    <TableRow><TableColumn rowspan="2">甲</TableColumn><TableColumn>千円</TableColumn></TableRow>
    <TableRow><TableColumn>二千円</TableColumn></TableRow>
  </Table>
</TableStruct>
</MainProvision></LawBody></Law>`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lawcat dev\n", out)
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "law.xml")
	require.NoError(t, os.WriteFile(input, []byte(lawXML), 0o644))
	output := filepath.Join(dir, "law.html")
	require.NoError(t, os.WriteFile(output, []byte("old"), 0o644))

	_, err := execute(t, "convert", "--format", "html", "--force", "-o", output, input)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<caption>別表</caption>")
	assert.Contains(t, string(data), `<td rowspan="2">甲</td>`)
}

func TestConvertCommandMissingFile(t *testing.T) {
	_, err := execute(t, "convert", filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	input := filepath.Join(t.TempDir(), "law.xml")
	require.NoError(t, os.WriteFile(input, []byte(lawXML), 0o644))

	out, err := execute(t, "inspect", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Table 1: 別表")
	assert.Contains(t, out, "甲")
}
