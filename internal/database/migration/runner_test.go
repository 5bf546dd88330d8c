package migration

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_SortsAndChecksums(t *testing.T) {
	src := fstest.MapFS{
		"V2__add_index.sql": {Data: []byte("CREATE INDEX x ON t (a);")},
		"V1__init.sql":      {Data: []byte("CREATE TABLE t (a INT);\n")},
		"README.md":         {Data: []byte("ignored")},
	}

	migs, err := LoadMigrations(src)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "CREATE TABLE t (a INT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoadMigrations_RejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := LoadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 2;")},
	})
	require.Error(t, err)

	_, err = LoadMigrations(fstest.MapFS{"V3__empty.sql": {Data: []byte("  \n")}})
	require.Error(t, err)
}

func TestEmbeddedMigrationsLoad(t *testing.T) {
	src, err := Runner{}.source()
	require.NoError(t, err)

	migs, err := LoadMigrations(src)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, int64(1), migs[0].Version)
}
