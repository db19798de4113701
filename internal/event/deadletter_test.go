package event

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadLetterWriter_AppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")

	w, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(Event{Version: EventSchemaVersion, Type: "sell"}, 3, errors.New("handler down")))
	require.NoError(t, w.Close())

	w, err = NewDeadLetterWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(Event{Version: EventSchemaVersion, Type: "buy"}, 1, nil))
	require.NoError(t, w.Close())

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Equal(t, Type("sell"), entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, "handler down", entries[0].LastError)

	assert.Equal(t, Type("buy"), entries[1].Event.Type)
	assert.Empty(t, entries[1].LastError)
}

func TestReadDeadLetters_MissingFile(t *testing.T) {
	entries, err := ReadDeadLetters(filepath.Join(t.TempDir(), "none.jsonl"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestReadDeadLetters_CorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	data := `{"schema_version":"1.0","attempts":2}` + "\n\n" + "{not json\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	entries, err := ReadDeadLetters(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Len(t, entries, 1)
}
