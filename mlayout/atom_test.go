package mlayout

import (
	"testing"

	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

func TestLayoutAtomNoAttachmentsReturnsNucleus(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	nucleus := mathexpr.NewField(mathexpr.UnicodeField("a"))
	e := mathexpr.NewAtom(nucleus, nil, nil, nil, nil)
	got := layoutAtom(e, shaper, mathexpr.DisplayStyle())
	want := layoutExpr(nucleus, shaper, mathexpr.DisplayStyle())
	if got.Width() != want.Width() {
		t.Errorf("an atom with no attachments should be exactly its nucleus, got width %v want %v", got.Width(), want.Width())
	}
}

func TestLayoutAtomSuperscriptPlacementAndKern(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	const nucGlyph, trGlyph uint16 = 'N', 'T'
	shaper.SetGlyph(nucGlyph, mathshape.GlyphMetric{Advance: 300, Ascent: 200, Descent: 50, ItalicCorrection: 20})
	shaper.SetGlyph(trGlyph, mathshape.GlyphMetric{Advance: 100, Ascent: 150, Descent: 10})
	shaper.SetKern(nucGlyph, mathshape.TopRight, 5)
	shaper.SetKern(trGlyph, mathshape.BottomLeft, 3) // DiagonalMirror(TopRight)

	nucleus := mathexpr.NewField(mathexpr.GlyphField(nucGlyph, 0))
	tr := mathexpr.NewField(mathexpr.GlyphField(trGlyph, 0))
	e := mathexpr.NewAtom(nucleus, nil, tr, nil, nil)

	got := layoutAtom(e, shaper, mathexpr.DisplayStyle())
	children := got.Content().Boxes
	if len(children) != 2 {
		t.Fatalf("expected nucleus+superscript, got %d children", len(children))
	}

	nucleusBox, trBox := children[0], children[1]
	if nucleusBox.Origin.X != 0 {
		t.Errorf("nucleus should sit at X=0 with no pre-scripts, got %v", nucleusBox.Origin.X)
	}

	const wantSupShift = layout.Abs(363) // SuperscriptShiftUp dominates in this scenario
	const wantKern = layout.Abs(5 + 3 + 20) // base kern + attach kern + nucleus italic correction
	wantX := nucleusBox.Width() + wantKern
	if trBox.Origin.X != wantX {
		t.Errorf("superscript X = %v, want %v", trBox.Origin.X, wantX)
	}
	if trBox.Origin.Y != -wantSupShift {
		t.Errorf("superscript Y = %v, want %v", trBox.Origin.Y, -wantSupShift)
	}
}

func TestLayoutAtomTopLeftIsAPrescript(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	nucleus := mathexpr.NewField(mathexpr.UnicodeField("n"))
	tl := mathexpr.NewField(mathexpr.UnicodeField("p"))
	e := mathexpr.NewAtom(nucleus, tl, nil, nil, nil)

	got := layoutAtom(e, shaper, mathexpr.DisplayStyle())
	children := got.Content().Boxes
	if len(children) != 2 {
		t.Fatalf("expected nucleus+prescript, got %d children", len(children))
	}
	nucleusBox, tlBox := children[0], children[1]
	if nucleusBox.Origin.X <= 0 {
		t.Errorf("nucleus should be shifted right to make room for the prescript, got %v", nucleusBox.Origin.X)
	}
	if tlBox.Origin.X >= nucleusBox.Origin.X {
		t.Errorf("a top-left script must sit to the left of the nucleus, got script X %v nucleus X %v", tlBox.Origin.X, nucleusBox.Origin.X)
	}
}

func TestScriptShiftsSuperscriptDominatedByShiftUpConstant(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	nucleus := mbox.NewSizedEmptyBox(mbox.Extents{Ascent: 200, Descent: 50})
	tr := mbox.NewSizedEmptyBox(mbox.Extents{Ascent: 150, Descent: 10})
	supShift, subShift := scriptShifts(shaper, mathexpr.DisplayStyle(), nucleus, nil, tr, nil, nil)
	if supShift != 363 {
		t.Errorf("supShift = %v, want 363 (SuperscriptShiftUp)", supShift)
	}
	if subShift != 0 {
		t.Errorf("subShift should stay zero with no subscript present, got %v", subShift)
	}
}

func TestScriptShiftsSubscriptDominatedByNucleusDescent(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	nucleus := mbox.NewSizedEmptyBox(mbox.Extents{Ascent: 200, Descent: 100})
	br := mbox.NewSizedEmptyBox(mbox.Extents{Ascent: 300, Descent: 10})
	_, subShift := scriptShifts(shaper, mathexpr.DisplayStyle(), nucleus, nil, nil, nil, br)
	// down=150, nucleus.Descent()+dropMin=100+50=150, br.Ascent()-topMax=300-400=-100
	if subShift != 150 {
		t.Errorf("subShift = %v, want 150", subShift)
	}
}

func TestEnforceGapRaisesAndSplitsRemainder(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	gapMin := shaper.MathConstant(mathshape.SubSuperscriptGapMin)              // 160
	bottomMaxWithSub := shaper.MathConstant(mathshape.SuperscriptBottomMaxWithSubscript) // 380

	supShift := layout.Abs(363)
	subShift := layout.Abs(150)
	tr := mbox.NewSizedEmptyBox(mbox.Extents{Descent: 180})
	br := mbox.NewSizedEmptyBox(mbox.Extents{Ascent: 390})

	enforceGap(&supShift, &subShift, tr, br, gapMin, bottomMaxWithSub)

	gotGap := (supShift - tr.Descent()) - (br.Ascent() - subShift)
	if gotGap != gapMin {
		t.Errorf("after enforcement the sup/sub gap should equal gapMin exactly, got %v want %v", gotGap, gapMin)
	}
}

func TestEnforceGapNoopWhenGapAlreadySatisfied(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	gapMin := shaper.MathConstant(mathshape.SubSuperscriptGapMin)
	bottomMaxWithSub := shaper.MathConstant(mathshape.SuperscriptBottomMaxWithSubscript)

	supShift := layout.Abs(1000)
	subShift := layout.Abs(1000)
	tr := mbox.NewSizedEmptyBox(mbox.Extents{Descent: 0})
	br := mbox.NewSizedEmptyBox(mbox.Extents{Ascent: 0})

	enforceGap(&supShift, &subShift, tr, br, gapMin, bottomMaxWithSub)
	if supShift != 1000 || subShift != 1000 {
		t.Errorf("shifts should be unchanged when the gap already exceeds gapMin, got sup=%v sub=%v", supShift, subShift)
	}
}
