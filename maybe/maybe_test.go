package maybe_test

import (
	"testing"

	. "github.com/npillmayer/fral/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeValue(t *testing.T) {
	if v, ok := Just(7).Value(); !ok || v != 7 {
		t.Errorf("expected Just(7).Value() to be (7, true), is (%d, %v)", v, ok)
	}
	if v, ok := Nothing[int]().Value(); ok || v != 0 {
		t.Errorf("expected Nothing.Value() to be (0, false), is (%d, %v)", v, ok)
	}
	if Just(7).IsNothing() {
		t.Error("expected Just(7) not to be Nothing, is")
	}
	if !Nothing[int]().IsNothing() {
		t.Error("expected Nothing to be Nothing, isn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Value(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	yy := Map(func(n int) string {
		if n > 0 {
			return "positive"
		}
		return "negative"
	}, Just(10))
	if s, _ := yy.Value(); s != "positive" {
		t.Logf("sign of 10 = %q", s)
		t.Error("expected Map(…, Just 10) to return \"positive\", didn't")
	}

	zz := Nothing[int]().Map(func(n int) int {
		return n * 2
	})
	if !zz.IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}

	if !AndThen(gt0, Nothing[int]()).IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to stay Nothing, isn't")
	}
}

func TestMaybeString(t *testing.T) {
	// maybe implements fmt.Stringer
	type stringer interface{ String() string }
	if s, ok := Just(7).(stringer); !ok || s.String() != "Just(7)" {
		t.Errorf("expected Just(7) to print as \"Just(7)\", is %v", s)
	}
	if s, ok := Nothing[int]().(stringer); !ok || s.String() != "Nothing" {
		t.Errorf("expected Nothing to print as \"Nothing\", is %v", s)
	}
}
