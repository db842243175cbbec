package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestEncodeOutput(t *testing.T) {
	tests := []struct {
		name string
		enc  string
		want func(string) string
	}{
		{"utf-8", "UTF-8", func(s string) string { return s }},
		{"empty", "", func(s string) string { return s }},
		{"shift_jis", "shift_jis", func(s string) string {
			out, err := japanese.ShiftJIS.NewEncoder().String(s)
			require.NoError(t, err)
			return out
		}},
		{"euc-jp", "euc-jp", func(s string) string {
			out, err := japanese.EUCJP.NewEncoder().String(s)
			require.NoError(t, err)
			return out
		}},
	}
	const text = "| 区分 | 金額 |\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := encodeOutput(&buf, tt.enc)
			require.NoError(t, err)
			_, err = w.Write([]byte(text))
			require.NoError(t, err)
			require.NoError(t, w.Close())
			assert.Equal(t, tt.want(text), buf.String())
		})
	}
}

func TestEncodeOutputReplacesUnsupported(t *testing.T) {
	var buf bytes.Buffer
	w, err := encodeOutput(&buf, "shift_jis")
	require.NoError(t, err)
	_, err = w.Write([]byte("한"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NotEmpty(t, buf.String())
}

func TestEncodeOutputUnknown(t *testing.T) {
	_, err := encodeOutput(&bytes.Buffer{}, "klingon")
	assert.Error(t, err)
}

func TestMayOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	tests := []struct {
		name        string
		path        string
		answer      string
		interactive bool
		want        bool
		wantErr     bool
	}{
		{name: "missing file", path: filepath.Join(dir, "new.md"), want: true},
		{name: "yes", path: existing, answer: "y\n", interactive: true, want: true},
		{name: "yes without newline", path: existing, answer: "Yes", interactive: true, want: true},
		{name: "no", path: existing, answer: "n\n", interactive: true},
		{name: "default is no", path: existing, answer: "\n", interactive: true},
		{name: "not a terminal", path: existing, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prompt bytes.Buffer
			got, err := mayOverwrite(tt.path, strings.NewReader(tt.answer), &prompt, tt.interactive)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.interactive {
				assert.Contains(t, prompt.String(), "Overwrite? [y/N]")
			}
		})
	}
}
