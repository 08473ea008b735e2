package linebreak

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func newOptimalBreaker(text string, lineWidth float64) *LineBreaker {
	lb := newTestBreaker(text, lineWidth)
	lb.SetStrategy(StrategyHighQuality)
	return lb
}

func TestOptimalRaggedRight(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	lb := newOptimalBreaker("aa aa aa", 55)
	addWholeRun(lb)
	n := lb.ComputeBreaks()
	if n != 2 {
		t.Fatalf("expected 2 lines, have %d (breaks %v)", n, lb.Breaks())
	}
	if lb.Breaks()[0] != 6 || lb.Breaks()[1] != 8 {
		t.Errorf("expected breaks [6 8], have %v", lb.Breaks())
	}
	if lb.Widths()[0] != 50 || lb.Widths()[1] != 20 {
		t.Errorf("expected widths [50 20], have %v", lb.Widths())
	}
}

func TestOptimalNeverOverfullRaggedRight(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	lb := newOptimalBreaker("the quick brown fox jumps over the lazy dog", 80)
	addWholeRun(lb)
	n := lb.ComputeBreaks()
	for k := 0; k < n; k++ {
		if lb.Widths()[k] > 80 {
			t.Errorf("line %d is overfull: %g", k, lb.Widths()[k])
		}
	}
	if lb.Breaks()[n-1] != 43 {
		t.Errorf("expected the last break at the paragraph end, have %v", lb.Breaks())
	}
}

func TestOptimalJustifiedShrinksSpaces(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// Line width 48: "aa aa" measures 50, overfull by 2. With one
	// shrinkable space inside the line (the trailing one disappears) this
	// is within 1/3 of a space width, so the optimizer prefers the
	// slightly overfull line over a very short one.
	lb := newOptimalBreaker("aa aa aa", 48)
	lb.SetJustified(true)
	addWholeRun(lb)
	n := lb.ComputeBreaks()
	if n != 2 {
		t.Fatalf("expected 2 lines, have %d (breaks %v)", n, lb.Breaks())
	}
	if lb.Breaks()[0] != 6 || lb.Breaks()[1] != 8 {
		t.Errorf("expected breaks [6 8], have %v", lb.Breaks())
	}
	if lb.Widths()[0] != 50 {
		t.Errorf("expected a shrinkable overfull first line of width 50, have %g", lb.Widths()[0])
	}
}

func TestOptimalJustifiedNotShrinkableEnough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// Line width 40: "aa aa" is overfull by 10, more than the spaces
	// can shrink. Three lines are required.
	lb := newOptimalBreaker("aa aa aa", 40)
	lb.SetJustified(true)
	addWholeRun(lb)
	n := lb.ComputeBreaks()
	if n != 3 {
		t.Fatalf("expected 3 lines, have %d (breaks %v)", n, lb.Breaks())
	}
	expected := []int{3, 6, 8}
	for k, b := range lb.Breaks() {
		if b != expected[k] {
			t.Errorf("expected breaks %v, have %v", expected, lb.Breaks())
			break
		}
	}
	for k, w := range lb.Widths() {
		if w != 20 {
			t.Errorf("expected line %d of width 20, have %g", k, w)
		}
	}
}

func TestOptimalMatchesGreedyOnTrivialInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	greedy := newTestBreaker("hello world", 200)
	addWholeRun(greedy)
	greedy.ComputeBreaks()

	optimal := newOptimalBreaker("hello world", 200)
	addWholeRun(optimal)
	optimal.ComputeBreaks()

	if len(greedy.Breaks()) != 1 || len(optimal.Breaks()) != 1 {
		t.Fatalf("expected a single line from both strategies")
	}
	if greedy.Breaks()[0] != optimal.Breaks()[0] {
		t.Errorf("strategies disagree on a paragraph that fits one line")
	}
	if greedy.Widths()[0] != optimal.Widths()[0] {
		t.Errorf("strategies disagree on the line width")
	}
}

func TestOptimalPerLineWidths(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// First line is wide, the rest narrow: the optimizer has to
	// re-evaluate the line width as line numbers change.
	lb := newTestBreaker("aaaa aaaa aaaa", 200)
	lb.SetStrategy(StrategyHighQuality)
	lb.SetLineWidths(RectangleLineWidths(100, 50, 1))
	addWholeRun(lb)
	n := lb.ComputeBreaks()
	if lb.Breaks()[n-1] != 14 {
		t.Fatalf("expected the last break at 14, have %v", lb.Breaks())
	}
	if lb.Widths()[0] > 100 {
		t.Errorf("first line is overfull: %g", lb.Widths()[0])
	}
	for k := 1; k < n; k++ {
		if lb.Widths()[k] > 50 {
			t.Errorf("line %d is overfull: %g", k, lb.Widths()[k])
		}
	}
}
