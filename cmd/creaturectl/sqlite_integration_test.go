//go:build sqlite

package main

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatures/internal/model"
)

func TestGrowShowListDeleteSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "creatures.db")
	store := []string{"--store", "sqlite", "--db-path", dbPath}
	out := captureOutput(t)

	grow := append([]string{"grow", "--id", "brain-1", "--topology", "3,2", "--seed", "4"}, store...)
	require.NoError(t, run(context.Background(), grow))
	assert.Contains(t, out.String(), "grew brain id=brain-1 topology=[3 2]")

	out.Reset()
	require.NoError(t, run(context.Background(), append([]string{"show", "--id", "brain-1"}, store...)))
	var record model.BrainRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "brain-1", record.ID)
	assert.Equal(t, []int{3, 2}, record.Topology())

	out.Reset()
	require.NoError(t, run(context.Background(), append([]string{"list"}, store...)))
	assert.Equal(t, []string{"brain-1"}, strings.Fields(out.String()))

	out.Reset()
	require.NoError(t, run(context.Background(), append([]string{"delete", "--id", "brain-1"}, store...)))
	err := run(context.Background(), append([]string{"show", "--id", "brain-1"}, store...))
	require.Error(t, err)
}
