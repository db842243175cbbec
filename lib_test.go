package lawtable_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/lawtable"
)

const feeTable = `<?xml version="1.0" encoding="UTF-8"?>
<Law><LawBody><MainProvision>
<TableStruct>
  <TableStructTitle>別表</TableStructTitle>
  <Table>
    <TableHeaderRow><TableHeaderColumn>区分</TableHeaderColumn><TableHeaderColumn>手数料</TableHeaderColumn></TableHeaderRow>
    <TableRow>
      <TableColumn BorderBottom="none"><Sentence>免許</Sentence></TableColumn>
      <TableColumn><Sentence>千円</Sentence></TableColumn>
    </TableRow>
    <TableRow>
      <TableColumn BorderTop="none"></TableColumn>
      <TableColumn><Sentence>二千円</Sentence></TableColumn>
    </TableRow>
  </Table>
</TableStruct>
</MainProvision></LawBody></Law>`

func TestConvertHybrid(t *testing.T) {
	var buf bytes.Buffer
	opts := lawtable.DefaultOptions()
	opts.Format = lawtable.HTML
	require.NoError(t, lawtable.Convert(strings.NewReader(feeTable), &buf, opts))

	out := buf.String()
	assert.Contains(t, out, "<caption>別表</caption>")
	assert.Contains(t, out, `<td rowspan="2" style="border-bottom: none">免許</td>`)
	assert.Equal(t, 3, strings.Count(out, "<td"))
}

func TestConvertStrict(t *testing.T) {
	var buf bytes.Buffer
	opts := lawtable.Options{Format: lawtable.HTML, Mode: lawtable.Strict}
	require.NoError(t, lawtable.Convert(strings.NewReader(feeTable), &buf, opts))

	out := buf.String()
	assert.NotContains(t, out, "rowspan")
	assert.Contains(t, out, `<td style="border-top: none"></td>`)
}

func TestConvertFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "law.xml")
	require.NoError(t, os.WriteFile(path, []byte(feeTable), 0o644))

	var buf bytes.Buffer
	require.NoError(t, lawtable.ConvertFile(path, &buf, lawtable.Options{Format: lawtable.Text, Mode: lawtable.Hybrid}))
	assert.True(t, strings.HasPrefix(buf.String(), "別表\n+"))
	assert.Contains(t, buf.String(), "免許")
}

func TestConvertFileMissing(t *testing.T) {
	err := lawtable.ConvertFile(filepath.Join(t.TempDir(), "missing.xml"), &bytes.Buffer{}, lawtable.DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestConvertMalformed(t *testing.T) {
	err := lawtable.Convert(strings.NewReader("<Law><Table>"), &bytes.Buffer{}, lawtable.DefaultOptions())
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, lawtable.Inspect(strings.NewReader(feeTable), &buf, lawtable.Hybrid, false))
	assert.Contains(t, buf.String(), "Table 1: 別表")
	assert.Contains(t, buf.String(), "hybrid mode merges 2 rows")
}
