package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBatchFileParsesVerbsAndSkipsCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ops.batch")
	require.NoError(t, os.WriteFile(path, []byte(""+
		"# a comment\n"+
		"\n"+
		"  insert 1 one  \n"+
		"update 1 uno\n"+
		"get 1\n"+
		"delete 1\n"), 0o600))

	ops, raw, err := loadBatchFile(path)
	require.NoError(t, err)
	require.Len(t, ops, 4)

	src := &raw[0]

	assert.Equal(t, "insert", ops[0].verbString(src))
	assert.Equal(t, "1", ops[0].keyString(src))
	assert.Equal(t, "one", ops[0].valueString(src))

	assert.Equal(t, "update", ops[1].verbString(src))
	assert.Equal(t, "uno", ops[1].valueString(src))

	assert.Equal(t, "get", ops[2].verbString(src))
	assert.Equal(t, "", ops[2].valueString(src))

	assert.Equal(t, "delete", ops[3].verbString(src))
}

func TestLoadBatchFileRejectsLineWithoutKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.batch")
	require.NoError(t, os.WriteFile(path, []byte("insert\n"), 0o600))

	_, _, err := loadBatchFile(path)
	assert.ErrorIs(t, err, ErrMalformedBatchLine)
}

func TestLoadBatchFileEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.batch")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	ops, raw, err := loadBatchFile(path)
	require.NoError(t, err)
	assert.Empty(t, ops)
	assert.Empty(t, raw)
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keys.batch")
	require.NoError(t, os.WriteFile(path, []byte("insert 42 v\n"), 0o600))

	ops, raw, err := loadBatchFile(path)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	key, err := parseKey(ops[0], &raw[0])
	require.NoError(t, err)
	assert.Equal(t, int64(42), key)
}
