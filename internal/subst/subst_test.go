package subst

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTableAndApply(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := `: replacement rules
ＴＶスペシャル,
foo,bar
1,2,3
`
	require.NoError(t, afero.WriteFile(fsys, "/data/recname.rp1", []byte(content), 0o644))

	table, err := LoadTable(fsys, "/data/recname.rp1")
	require.NoError(t, err)
	require.Len(t, table, 3)

	// Empty replacement deletes; extra commas belong to the replacement.
	assert.Equal(t, "Show bar", table.Apply("ＴＶスペシャルShow foo"))
	assert.Equal(t, "x2,3y", table.Apply("x1y"))
}

func TestLoadTableMissing(t *testing.T) {
	table, err := LoadTable(afero.NewMemMapFs(), "/data/recname.rp1")
	require.NoError(t, err)
	assert.Nil(t, table)
	assert.Equal(t, "unchanged", table.Apply("unchanged"))
}

func TestExclusions(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := `: exclusion list
sample
KEEPOUT
`
	require.NoError(t, afero.WriteFile(fsys, "/data/recname.exc", []byte(content), 0o644))

	exc, err := LoadExclusions(fsys, "/data/recname.exc")
	require.NoError(t, err)
	require.Len(t, exc, 2)

	assert.True(t, Excluded("/rec/My Sample Show.ts", exc))
	assert.True(t, Excluded("/rec/keepout_0100.ts", exc))
	assert.False(t, Excluded("/rec/Example Show.ts", exc))
	assert.False(t, Excluded("/rec/Example Show.ts", nil))
}
