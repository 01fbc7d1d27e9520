package normalize

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDateHint(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	fsys := afero.NewMemMapFs()

	cases := []struct {
		name string
		file string

		wantTarget   time.Time
		wantAnchored bool
		wantWindow   int
		wantOffset   int
	}{
		{
			name:         "8-digit date with contiguous time",
			file:         "202006010100_Example_Show",
			wantTarget:   time.Date(2020, 6, 1, 1, 0, 0, 0, time.Local),
			wantAnchored: true, wantWindow: 1, wantOffset: 12,
		},
		{
			name:         "6-digit date with separated time",
			file:         "200601_0100 Example Show",
			wantTarget:   time.Date(2020, 6, 1, 1, 0, 0, 0, time.Local),
			wantAnchored: true, wantWindow: 1, wantOffset: 11,
		},
		{
			name:         "8-digit date only",
			file:         "20200601_Example_Show",
			wantTarget:   time.Date(2020, 6, 1, 0, 0, 0, 0, time.Local),
			wantAnchored: false, wantWindow: 1, wantOffset: 8,
		},
		{
			name:         "hour 25 rolls into the next day",
			file:         "20200601_2530_Show_Title",
			wantTarget:   time.Date(2020, 6, 2, 1, 30, 0, 0, time.Local),
			wantAnchored: true, wantWindow: 1, wantOffset: 13,
		},
		{
			name:         "no date and no file",
			file:         "Example_Show_TVX",
			wantTarget:   now,
			wantAnchored: false, wantWindow: 1, wantOffset: 1,
		},
		{
			name:         "far-future year rejected",
			file:         "20991231_Example_Show",
			wantTarget:   now,
			wantAnchored: false, wantWindow: 1, wantOffset: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractDateHint(fsys, tc.file, tc.file, 0, now)
			assert.Equal(t, tc.wantTarget, got.Target)
			assert.Equal(t, tc.wantAnchored, got.AnchoredAtStart)
			assert.Equal(t, tc.wantWindow, got.WindowDays)
			assert.Equal(t, tc.wantOffset, got.TitleOffset)
		})
	}
}

func TestExtractDateHintFileFallback(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	mt := time.Date(2026, 8, 20, 21, 15, 30, 0, time.Local)

	fsys := afero.NewMemMapFs()
	const path = "/rec/Example_Show.ts"
	require.NoError(t, afero.WriteFile(fsys, path, []byte("x"), 0o644))
	require.NoError(t, fsys.Chtimes(path, mt, mt))

	t.Run("no date in name uses file time and a wide window", func(t *testing.T) {
		got := ExtractDateHint(fsys, "Example_Show", path, 0, now)
		assert.Equal(t, mt, got.Target)
		assert.False(t, got.AnchoredAtStart)
		assert.Equal(t, 7, got.WindowDays)
	})

	t.Run("date in name takes the file's time of day", func(t *testing.T) {
		got := ExtractDateHint(fsys, "20260820_Example_Show", path, 0, now)
		assert.Equal(t, time.Date(2026, 8, 20, 21, 15, 30, 0, time.Local), got.Target)
		assert.False(t, got.AnchoredAtStart)
		assert.Equal(t, 1, got.WindowDays)
	})
}

func TestExtractDateHintExplicitOffset(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	got := ExtractDateHint(afero.NewMemMapFs(), "202006010100_Show", "202006010100_Show", 3, now)
	// The explicit offset seeds TitleOffset but a leading date overrides it.
	assert.Equal(t, 12, got.TitleOffset)
	assert.True(t, got.AnchoredAtStart)
}
