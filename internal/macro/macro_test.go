package macro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEpisodeNumbers(t *testing.T) {
	cases := []struct {
		name  string
		label string
		want  [4]string
	}{
		{name: "single digit", label: "#7", want: [4]string{"7", "07", "007", "0007"}},
		{name: "two digits", label: "#12", want: [4]string{"12", "12", "012", "0012"}},
		{name: "leading zeros normalized", label: "#007", want: [4]string{"7", "07", "007", "0007"}},
		{name: "combined episodes", label: "#5,#6", want: [4]string{"56", "05,06", "005,006", "0005,0006"}},
		{name: "empty label", label: "", want: [4]string{"", "", "", ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n1, n2, n3, n4 := episodeNumbers(tc.label)
			assert.Equal(t, tc.want, [4]string{n1, n2, n3, n4})
		})
	}
}

func TestExpandDateTime(t *testing.T) {
	// Monday 2020-06-08, 25:30 in listing terms.
	start := time.Date(2020, 6, 9, 1, 30, 0, 0, time.Local)

	cases := []struct {
		name     string
		template string
		want     string
	}{
		{name: "date", template: "$SCdate$", want: "200609"},
		{name: "date2", template: "$SCdate2$", want: "20200609"},
		{name: "quarter", template: "Q$SCquarter$", want: "Q2"},
		{name: "weekday japanese", template: "$SCweek$", want: "火"},
		{name: "weekday short", template: "$SCweek2$", want: "Tue"},
		{name: "time", template: "$SCtime$", want: "0130"},
		{name: "night-adjusted date", template: "$SCdates$", want: "200608"},
		{name: "night-adjusted hour", template: "$SChours$", want: "25"},
		{name: "night-adjusted time", template: "$SCtimes$", want: "2530"},
		{name: "night-adjusted weekday", template: "$SCweeks$", want: "月"},
		{name: "shorter macro does not eat longer one", template: "$SCdate2$|$SCdate$", want: "20200609|200609"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expandDateTime(tc.template, start, ""))
		})
	}

	t.Run("evening time needs no adjustment", func(t *testing.T) {
		evening := time.Date(2020, 6, 8, 21, 0, 0, 0, time.Local)
		assert.Equal(t, "200608 21", expandDateTime("$SCdates$ $SChours$", evening, ""))
	})
}

func TestExpand(t *testing.T) {
	in := Input{
		Title:        "Example Show",
		Subtitle:     "The Subtitle",
		EpisodeLabel: "#12",
		Part:         "",
		Service:      "TVEX",
		Start:        time.Date(2020, 6, 1, 1, 0, 0, 0, time.Local),
		End:          time.Date(2020, 6, 1, 1, 30, 0, 0, time.Local),
	}

	t.Run("full template", func(t *testing.T) {
		got := Expand("$SCdate$_$SCtitle$_$SCnumber$_$SCsubtitle$.$SCservice$", in)
		assert.Equal(t, "200601_Example Show_12_The Subtitle.TVEX", got)
	})

	t.Run("end-time macros", func(t *testing.T) {
		assert.Equal(t, "0130", Expand("$SCedtime$", in))
	})

	t.Run("condensed title", func(t *testing.T) {
		assert.Equal(t, "EXAMPLESHOW", Expand("$SCtitle2$", in))
	})

	t.Run("slash in program text widens", func(t *testing.T) {
		slashed := in
		slashed.Subtitle = "A/B"
		assert.Equal(t, "dir/A／B", Expand("dir/$SCsubtitle$", slashed))
	})

	t.Run("macro-free template is untouched", func(t *testing.T) {
		const plain = "nothing $here/to\\expand"
		assert.Equal(t, plain, Expand(plain, in))
	})
}

func TestReplaceInvalidChars(t *testing.T) {
	t.Run("hostile characters widen", func(t *testing.T) {
		assert.Equal(t, "a：b？c＜d＞e｜f”g＊h！",
			ReplaceInvalidChars(`a:b?c<d>e|f"g*h!`, "tmpl"))
	})

	t.Run("drive prefix keeps its colon", func(t *testing.T) {
		got := ReplaceInvalidChars(`C:\rec\a:b`, `C:\rec\$SCtitle$`)
		assert.Equal(t, `C:\rec\a：b`, got)
	})

	t.Run("no drive in template converts everything", func(t *testing.T) {
		got := ReplaceInvalidChars(`C:\rec\a`, `\rec\$SCtitle$`)
		assert.Equal(t, `C：\rec\a`, got)
	})
}

func TestCollapseSpaces(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "runs collapse to first", in: "a  b   c", want: "a b c"},
		{name: "outer whitespace trimmed", in: "  a b ", want: "a b"},
		{name: "space before backslash removed", in: `ab \dir\file`, want: `ab\dir\file`},
		{name: "run after backslash removed", in: `ab\  cd`, want: `ab\cd`},
		{name: "full-width spaces count", in: "a　　b", want: "a　b"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CollapseSpaces(tc.in))
		})
	}
}
