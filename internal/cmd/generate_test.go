package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateRunWritesOutput(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	outPath := filepath.Join(dir, "xapi.d.ts")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"Command": {"Standby": {"command": "True"}}}`), 0o644))

	cmd := &Generate{
		Schema:     schemaPath,
		Output:     outPath,
		XAPIImport: "jsxapi",
		ClassName:  "TypedXAPI",
		Base:       "XAPI",
		Connect:    true,
	}
	require.NoError(t, cmd.Run(testLogger()))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Standby<R=any>(): Promise<R>;")
	assert.Contains(t, string(data), "export const connect = connectGen(TypedXAPI);")
}

func TestGenerateRunReportsErrors(t *testing.T) {
	cmd := &Generate{Schema: filepath.Join(t.TempDir(), "absent.json")}
	assert.Error(t, cmd.Run(testLogger()))
}
