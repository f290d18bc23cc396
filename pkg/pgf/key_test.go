package pgf

import (
	"fmt"
	"testing"
)

func TestKeysAddSameGroupKeepsLast(t *testing.T) {
	var ks Keys[AxisKey]
	for i := range 5 {
		ks.Add(Title(fmt.Sprintf("title %d", i)))
	}

	got := ks.List()
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0] != Title("title 4") {
		t.Errorf("surviving key = %v, want %v", got[0], Title("title 4"))
	}
}

func TestKeysAddCustomNeverDeduplicated(t *testing.T) {
	var ks Keys[PlotKey]
	want := []string{"fill=gray!20", "draw opacity=0.5", "fill=gray!20"}
	for _, k := range want {
		ks.Add(Custom(k))
	}

	got := ks.List()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, k := range got {
		if k.String() != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, k.String(), want[i])
		}
	}
}

func TestKeysAddMovesReplacedKeyToEnd(t *testing.T) {
	var ks Keys[AxisKey]
	ks.Add(Title("first"))
	ks.Add(XLabel("$x$"))
	ks.Add(Custom("axis lines=middle"))
	ks.Add(Title("second"))

	got := ks.List()
	want := []AxisKey{XLabel("$x$"), Custom("axis lines=middle"), Title("second")}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestKeysSharedGroupAcrossTypes(t *testing.T) {
	p := NewPlot2D()
	p.AddKey(XBar{Width: 10})
	p.AddKey(OnlyMarks)
	p.AddKey(YBar{Width: 19.5})

	got := p.Keys()
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1: %v", len(got), got)
	}
	if got[0] != (YBar{Width: 19.5}) {
		t.Errorf("surviving key = %v, want YBar", got[0])
	}
}

func TestKeysScopedPerNode(t *testing.T) {
	plot := NewPlot2D()
	plot.AddKey(Custom("title={plot}"))

	axis := NewAxis()
	axis.Plots = append(axis.Plots, *plot)
	axis.AddKey(Title("axis"))
	axis.AddKey(Custom("title={plot}"))

	if n := len(axis.Plots[0].Keys()); n != 1 {
		t.Errorf("plot keys = %d, want 1", n)
	}
	if n := len(axis.Keys()); n != 2 {
		t.Errorf("axis keys = %d, want 2", n)
	}
}

func TestKeysListIsCopy(t *testing.T) {
	var ks Keys[PictureKey]
	ks.Add(Custom("baseline"))

	got := ks.List()
	got[0] = Custom("changed")

	if ks.List()[0] != Custom("baseline") {
		t.Error("List() should return a copy")
	}
}

func TestKeysCopiedNodeIsIndependent(t *testing.T) {
	a := NewAxis()
	a.AddKey(Title("one"))
	a.AddKey(Custom("grid=major"))

	copied := *a
	a.AddKey(Title("two"))

	got := copied.Keys()
	if len(got) != 2 || got[0] != Title("one") {
		t.Errorf("copy changed after AddKey on original: %v", got)
	}
}

func TestKeysGet(t *testing.T) {
	var ks Keys[AxisKey]
	ks.Add(Custom("a"))
	ks.Add(Title("T"))
	ks.Add(Custom("b"))

	if k, ok := ks.Get(GroupTitle); !ok || k != Title("T") {
		t.Errorf("Get(title) = %v, %v", k, ok)
	}
	if k, ok := ks.Get(GroupCustom); !ok || k != Custom("b") {
		t.Errorf("Get(custom) = %v, %v; want most recent custom key", k, ok)
	}
	if _, ok := ks.Get(GroupXMode); ok {
		t.Error("Get(xmode) should report missing")
	}
}

func TestKeyStrings(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Custom("axis lines=middle"), "axis lines=middle"},
		{Title("Rectangle Integration"), "title={Rectangle Integration}"},
		{XLabel("$x$"), "xlabel={$x$}"},
		{YLabel("$y = x^2$"), "ylabel={$y = x^2$}"},
		{XMode(ScaleLog), "xmode=log"},
		{YMode(ScaleNormal), "ymode=normal"},
		{XMin(-1.5), "xmin=-1.5"},
		{YMax(100), "ymax=100"},
		{Width("8cm"), "width=8cm"},
		{AxisLines(AxisLinesMiddle), "axis lines=middle"},
		{LegendPos("north west"), "legend pos=north west"},
		{SharpPlot, "sharp plot"},
		{ConstMid, "const plot mark mid"},
		{OnlyMarks, "only marks"},
		{YBarInterval, "ybar interval"},
		{YBar{Width: 19.5}, "ybar, bar width=19.5, bar shift=0"},
		{XBar{Width: 2, Shift: -1}, "xbar, bar width=2, bar shift=-1"},
		{XError(ErrorAbsolute), "error bars/x explicit"},
		{YError(ErrorRelative), "error bars/y explicit relative"},
		{YErrorDirection(ErrorBoth), "error bars/y dir=both"},
		{XErrorDirection(ErrorMinus), "error bars/x dir=minus"},
		{Mark("square*"), "mark=square*"},
		{Color("blue!60"), "color=blue!60"},
		{PictureScale(0.5), "scale=0.5"},
		{Type2D(99), "Type2D(99)"},
		{AxisLines(42), "axis lines=AxisLines(42)"},
		{XError(7), "error bars/x ErrorCharacter(7)"},
		{YErrorDirection(-1), "error bars/y dir=ErrorDirection(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHelpers(t *testing.T) {
	if s, ok := ParseScale("log"); !ok || s != ScaleLog {
		t.Errorf("ParseScale(log) = %v, %v", s, ok)
	}
	if _, ok := ParseScale("cubic"); ok {
		t.Error("ParseScale(cubic) should fail")
	}
	if typ, ok := ParseType2D("only marks"); !ok || typ != OnlyMarks {
		t.Errorf("ParseType2D(only marks) = %v, %v", typ, ok)
	}
	if _, ok := ParseType2D("pie"); ok {
		t.Error("ParseType2D(pie) should fail")
	}
	if l, ok := ParseAxisLines("middle"); !ok || l != AxisLinesMiddle {
		t.Errorf("ParseAxisLines(middle) = %v, %v", l, ok)
	}
}
