package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	err = d.Ping()
	assert.NoError(t, err)
}

func TestMigrationsApply(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	var tableName string

	err = d.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='first_aid_checks'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "first_aid_checks", tableName)

	err = d.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='check_items'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "check_items", tableName)
}

func TestMigrationsIdempotent(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	// A second run must be a no-op, not an error.
	err = runMigrations(d)
	assert.NoError(t, err)
}
