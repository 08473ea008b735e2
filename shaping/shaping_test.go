package shaping_test

import (
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/parbreak/hyphen"
	"github.com/npillmayer/parbreak/shaping"
	"github.com/npillmayer/schuko/testconfig"
)

func TestExtentIsAMonoid(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	var e shaping.Extent
	e.ExtendBy(shaping.Extent{Ascent: -8, Descent: 2})
	e.ExtendBy(shaping.Extent{Ascent: -10, Descent: 1, LineGap: 3})
	if e.Ascent != -10 || e.Descent != 2 || e.LineGap != 3 {
		t.Errorf("expected combined extent -10/2/3, have %v", e)
	}
	e.ExtendBy(shaping.Extent{}) // identity
	if e.Ascent != -10 || e.Descent != 2 || e.LineGap != 3 {
		t.Errorf("the zero extent must be the identity, have %v", e)
	}
	e.Reset()
	if e != (shaping.Extent{}) {
		t.Errorf("expected the zero extent after Reset, have %v", e)
	}
}

func TestMonospaceMeasure(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	ms := shaping.NewMonospace(10)
	buf := utf16.Encode([]rune("abc"))
	widths := make([]float64, 3)
	extents := make([]shaping.Extent, 3)
	w := ms.MeasureText(buf, 0, 3, 3, shaping.BidiForceLTR, shaping.Style{}, nil, nil, widths, extents)
	if w != 30 {
		t.Errorf("expected total width 30, have %g", w)
	}
	for i, cw := range widths {
		if cw != 10 {
			t.Errorf("unit %d: expected width 10, have %g", i, cw)
		}
		if extents[i].Ascent != -8 || extents[i].Descent != 2 {
			t.Errorf("unit %d: expected extent -8/2, have %v", i, extents[i])
		}
	}
}

func TestMonospaceSurrogatePair(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	ms := shaping.NewMonospace(10)
	buf := utf16.Encode([]rune("a𝕏b")) // 𝕏 is a surrogate pair
	if len(buf) != 4 {
		t.Fatalf("expected 4 code units, have %d", len(buf))
	}
	w := ms.MeasureText(buf, 0, 4, 4, shaping.BidiForceLTR, shaping.Style{}, nil, nil, nil, nil)
	if w != 30 {
		t.Errorf("expected the pair to measure once: width 30, have %g", w)
	}
}

func TestMonospaceHyphenEdit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	ms := shaping.NewMonospace(10)
	buf := utf16.Encode([]rune("super"))
	paint := shaping.Paint{Size: 12, ScaleX: 1, HyphenEdit: hyphen.InsertHyphenAtEnd}
	w := ms.MeasureText(buf, 0, 5, 5, shaping.BidiForceLTR, shaping.Style{}, &paint, nil, nil, nil)
	if w != 60 {
		t.Errorf("expected 50 plus a hyphen advance, have %g", w)
	}
	paint.HyphenEdit = hyphen.BreakAtStart
	w = ms.MeasureText(buf, 0, 5, 5, shaping.BidiForceLTR, shaping.Style{}, &paint, nil, nil, nil)
	if w != 50 {
		t.Errorf("expected no hyphen advance for a plain break edit, have %g", w)
	}
}
