package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	cases := []struct {
		name string
		path string
		want RawName
	}{
		{
			name: "plain file",
			path: "/rec/200601_Show_TVX.ts",
			want: RawName{Dir: "/rec", Base: "200601_Show_TVX", Ext: ".ts"},
		},
		{
			name: "no directory",
			path: "200601_Show_TVX.ts",
			want: RawName{Dir: "", Base: "200601_Show_TVX", Ext: ".ts"},
		},
		{
			name: "pseudo extension stripped",
			path: "/rec/200601_Show_TVX.x264.ts",
			want: RawName{Dir: "/rec", Base: "200601_Show_TVX", Ext: ".ts"},
		},
		{
			name: "dot inside title kept",
			path: "/rec/Show No.5_TVX.ts",
			want: RawName{Dir: "/rec", Base: "Show No.5_TVX", Ext: ".ts"},
		},
		{
			name: "drive letter only",
			path: `C:200601_Show.ts`,
			want: RawName{Dir: "C:", Base: "200601_Show", Ext: ".ts"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitPath(tc.path))
		})
	}
}

func TestStripLeadingDecoration(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain title untouched", in: "Example Show", want: "Example Show"},
		{name: "separators and punctuation", in: "_- :Example", want: "Example"},
		{name: "bracketed group skipped", in: "[字]Example", want: "Example"},
		{name: "full-width bracket group skipped", in: "【新】Example", want: "Example"},
		{name: "unmatched open bracket kept", in: "[Example", want: "[Example"},
		{name: "quoted title kept with blanked close", in: "『Show』 Example", want: "Show  Example"},
		{name: "interpunct stripped", in: "・Example", want: "Example"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StripLeadingDecoration(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("all decoration fails", func(t *testing.T) {
		_, err := StripLeadingDecoration("__--  ")
		assert.ErrorIs(t, err, ErrNoTitle)
	})
}

func TestNormalizeWidth(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "full-width punctuation", in: "Ａ：Ｂ／Ｃ", want: "A:B/C"},
		{name: "full-width digits", in: "第１２話", want: "第12話"},
		{name: "full-width letters", in: "ＴＶＸ ａｂｃ", want: "TVX abc"},
		{name: "roman numerals", in: "ShowⅡ", want: "ShowII"},
		{name: "full-width space", in: "A　B", want: "A B"},
		{name: "brackets untouched", in: "「サブ」", want: "「サブ」"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeWidth(tc.in))
		})
	}
}

func TestExtractSearchTitle(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "stops at space", in: "Example Show", maxLen: 4, want: "Exam"},
		{name: "stops at separator", in: "AB_CD", maxLen: 4, want: "AB"},
		{name: "stops at bracket", in: "夏空「第1話」", maxLen: 6, want: "夏空"},
		{name: "leading char never a boundary", in: "_Show", maxLen: 4, want: "_Sho"},
		{name: "shorter than max", in: "AB", maxLen: 4, want: "AB"},
		{name: "zero max falls back", in: "Example Show", maxLen: 0, want: "Exam"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractSearchTitle(tc.in, tc.maxLen))
		})
	}
}
