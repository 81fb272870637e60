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

	for _, table := range []string{
		"ships", "motors", "maintenance_steps", "technicians",
		"completions", "photos", "audit_log",
	} {
		var name string
		err = d.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenForTestingIsolation(t *testing.T) {
	first, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, first.Close()) })

	second, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, second.Close()) })

	_, err = first.Exec("INSERT INTO ships (id, name) VALUES ('s1', 'MV Test')")
	require.NoError(t, err)

	var count int
	err = second.QueryRow("SELECT COUNT(*) FROM ships").Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}
