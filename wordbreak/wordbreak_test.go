package wordbreak_test

import (
	"fmt"
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/parbreak/wordbreak"
	"github.com/npillmayer/schuko/testconfig"
)

func u16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func boundaries(text string) []int {
	wb := wordbreak.New()
	wb.SetText(u16(text))
	var bs []int
	for b := wb.Next(); b >= 0; b = wb.Next() {
		bs = append(bs, b)
	}
	return bs
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ExampleBreaker() {
	wb := wordbreak.New()
	wb.SetText(utf16.Encode([]rune("hello world")))
	for b := wb.Next(); b >= 0; b = wb.Next() {
		fmt.Println(b)
	}
	// Output:
	// 6
	// 11
}

func TestBoundariesSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// a line may end after "hello " (space included) and at the end
	if bs := boundaries("hello world"); !equalInts(bs, []int{6, 11}) {
		t.Errorf("expected boundaries [6 11], have %v", bs)
	}
}

func TestBoundariesTab(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if bs := boundaries("a\tb"); !equalInts(bs, []int{2, 3}) {
		t.Errorf("expected boundaries [2 3], have %v", bs)
	}
}

func TestBoundariesEmpty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if bs := boundaries(""); len(bs) != 0 {
		t.Errorf("expected no boundaries for empty text, have %v", bs)
	}
}

func TestNoBreakAroundNBSP(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if bs := boundaries("aa\u00A0bb"); !equalInts(bs, []int{5}) {
		t.Errorf("expected only the end boundary, have %v", bs)
	}
}

func TestMandatoryBreakCRLF(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// CR LF counts once: no boundary between CR and LF
	if bs := boundaries("ab\r\ncd"); !equalInts(bs, []int{4, 6}) {
		t.Errorf("expected boundaries [4 6], have %v", bs)
	}
}

func TestBreakAfterHyphen(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	if bs := boundaries("lime-tree"); !equalInts(bs, []int{5, 9}) {
		t.Errorf("expected boundaries [5 9], have %v", bs)
	}
}

func TestWordExtentTrimsSpaces(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	wb := wordbreak.New()
	wb.SetText(u16("hello   world"))
	if b := wb.Next(); b != 8 {
		t.Fatalf("expected first boundary at 8, have %d", b)
	}
	if ws, we := wb.WordStart(), wb.WordEnd(); ws != 0 || we != 5 {
		t.Errorf("expected word extent [0,5), have [%d,%d)", ws, we)
	}
	if b := wb.Next(); b != 13 {
		t.Fatalf("expected second boundary at 13, have %d", b)
	}
	if ws, we := wb.WordStart(), wb.WordEnd(); ws != 8 || we != 13 {
		t.Errorf("expected word extent [8,13), have [%d,%d)", ws, we)
	}
}

func TestBreakBadnessInsideURL(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	wb := wordbreak.New()
	wb.SetText(u16("x http://a-b.c y"))
	saw := map[int]float64{}
	for b := wb.Next(); b >= 0; b = wb.Next() {
		saw[b] = wb.BreakBadness()
	}
	if saw[11] != 1 {
		t.Errorf("expected badness 1 for the boundary inside the URL, have %v", saw)
	}
	if saw[2] != 0 || saw[15] != 0 {
		t.Errorf("expected badness 0 outside the URL, have %v", saw)
	}
}

func TestBreakerReuse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	wb := wordbreak.New()
	wb.SetText(u16("one two"))
	n := 0
	for b := wb.Next(); b >= 0; b = wb.Next() {
		n++
	}
	wb.Finish()
	wb.SetText(u16("three four"))
	if b := wb.Next(); b != 6 {
		t.Errorf("expected the first boundary of the new text at 6, have %d", b)
	}
	if n != 2 {
		t.Errorf("expected 2 boundaries in the first text, have %d", n)
	}
}
