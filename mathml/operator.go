package mathml

import (
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/opdict"
	"github.com/typeset/mathlayout/layout"
)

// OperatorAttrs is the parser-side bundle of everything an `mo` token's
// attributes contributed, kept off the tree node itself so parser-time
// metadata never widens the node's own variant set.
type OperatorAttrs struct {
	FormExplicit bool
	Form         opdict.Form

	LSpace *layout.Length
	RSpace *layout.Length

	Flags         opdict.Flags
	UserOverrides opdict.Flags

	Stretchy  bool
	LargeOp   bool
	Resolved  bool // set once resolveOperator has consumed this entry
}

// parserState threads the side table of pending operator attributes
// through the recursive build. The dirs table is created alongside it but
// nothing writes to it: `dir` values are validated and then dropped.
type parserState struct {
	attrs *mathexpr.SideTable[*OperatorAttrs]
	dirs  *mathexpr.SideTable[Direction]
}

func newParserState() *parserState {
	return &parserState{
		attrs: mathexpr.NewSideTable[*OperatorAttrs](),
		dirs:  mathexpr.NewSideTable[Direction](),
	}
}

// attachOperatorAttrs allocates a NodeID for an mo-derived Field node and
// records its parsed attributes.
func (s *parserState) attachOperatorAttrs(field *mathexpr.Expr, attrs *OperatorAttrs) {
	id := s.attrs.Allocate()
	field.ID = id
	s.attrs.Set(id, attrs)
}

func (s *parserState) attrsFor(e *mathexpr.Expr) (*OperatorAttrs, bool) {
	if e.ID == 0 {
		return nil, false
	}
	a, ok := s.attrs.Get(e.ID)
	return a, ok
}

// embellishedCore walks the embellishment chain -- the nucleus of an Atom
// or OverUnder, the numerator of a GeneralizedFraction, or the radicand of
// a Root -- to the innermost Field, collecting every OverUnder node on the
// path so MOVABLE_LIMITS can later be propagated to each one. Following
// Root.Radicand is a deliberate generalization beyond the minimal set.
func embellishedCore(e *mathexpr.Expr) (core *mathexpr.Expr, overUnders []*mathexpr.Expr) {
	for {
		switch e.Kind {
		case mathexpr.KindField:
			return e, overUnders
		case mathexpr.KindAtom:
			if e.Nucleus == nil {
				return e, overUnders
			}
			e = e.Nucleus
		case mathexpr.KindOverUnder:
			overUnders = append(overUnders, e)
			if e.Nucleus == nil {
				return e, overUnders
			}
			e = e.Nucleus
		case mathexpr.KindFraction:
			if e.Numerator == nil {
				return e, overUnders
			}
			e = e.Numerator
		case mathexpr.KindRoot:
			if e.Radicand == nil {
				return e, overUnders
			}
			e = e.Radicand
		default:
			return e, overUnders
		}
	}
}

// resolveOperator performs steps 3-7 of the disambiguation algorithm for a
// single embellished operator root, given the form to use when the source
// didn't specify one explicitly.
func resolveOperator(root *mathexpr.Expr, state *parserState, defaultForm opdict.Form) {
	core, overUnders := embellishedCore(root)
	if core.Kind != mathexpr.KindField {
		return
	}
	attrs, ok := state.attrsFor(core)
	if !ok || attrs.Resolved {
		return
	}
	attrs.Resolved = true

	form := defaultForm
	if attrs.FormExplicit {
		form = attrs.Form
	}

	var char rune
	for _, r := range core.Field.Text {
		char = r
		break
	}
	entry := opdict.Lookup(char, form)

	flags := (attrs.UserOverrides & attrs.Flags) | (^attrs.UserOverrides & entry.Flags)

	lspace := eighteenthsToEm(entry.LSpace)
	if attrs.LSpace != nil {
		lspace = *attrs.LSpace
	}
	rspace := eighteenthsToEm(entry.RSpace)
	if attrs.RSpace != nil {
		rspace = *attrs.RSpace
	}

	var stretch *mathexpr.StretchConstraints
	if flags.Has(opdict.Stretchy) {
		stretch = &mathexpr.StretchConstraints{Symmetric: flags.Has(opdict.Symmetric)}
	}

	field := core.Field
	*core = mathexpr.Expr{
		Kind:      mathexpr.KindOperator,
		ID:        core.ID,
		OpField:   field,
		LSpace:    lspace,
		RSpace:    rspace,
		Flags:     flags,
		Stretch:   stretch,
		IsLargeOp: flags.Has(opdict.LargeOp),
	}

	if flags.Has(opdict.MovableLimits) {
		for _, ou := range overUnders {
			ou.IsLimits = true
		}
	}
}

// resolveOperatorsInList applies the full positional default-form
// inference across a list's direct children, then
// resolves each embellished operator found among them. Position is
// determined among all non-whitespace children of the row, not just the
// operators themselves: an operator that is the row's first child (and the
// row has more than one child) defaults to Prefix, the last to Postfix,
// a sole child to Infix, any other position to Infix.
func resolveOperatorsInList(children []*mathexpr.Expr, state *parserState) {
	var nonWs []*mathexpr.Expr
	for _, c := range children {
		if isWhitespaceChild(c) {
			continue
		}
		nonWs = append(nonWs, c)
	}

	formFor := func(idx int) opdict.Form {
		switch {
		case len(nonWs) <= 1:
			return opdict.Infix
		case idx == 0:
			return opdict.Prefix
		case idx == len(nonWs)-1:
			return opdict.Postfix
		default:
			return opdict.Infix
		}
	}

	posIndex := make(map[*mathexpr.Expr]int, len(nonWs))
	for i, c := range nonWs {
		posIndex[c] = i
	}

	for _, c := range children {
		core, _ := embellishedCore(c)
		if core.Kind != mathexpr.KindField {
			continue
		}
		if _, ok := state.attrsFor(core); !ok {
			continue
		}
		form := opdict.Infix
		if idx, ok := posIndex[c]; ok {
			form = formFor(idx)
		}
		resolveOperator(c, state, form)
	}
}

// isWhitespaceChild reports whether a list child is a whitespace-only
// token, excluded from positional numbering.
func isWhitespaceChild(e *mathexpr.Expr) bool {
	return e.Kind == mathexpr.KindField && e.Field.Kind == mathexpr.FieldUnicode && isWhitespaceText(e.Field.Text)
}

// resolveScriptOrAccentChild resolves a single child of msub/msup/msubsup
// (script position) or mover/munder/munderover (over/under position) as an
// operator defaulting to Postfix form.
func resolveScriptOrAccentChild(child *mathexpr.Expr, state *parserState) {
	resolveOperator(child, state, opdict.Postfix)
}

// operatorFlags reports the resolved Operator flags at the embellishment
// core of e, or zero if e isn't (or doesn't wrap) a resolved operator.
func operatorFlags(e *mathexpr.Expr) opdict.Flags {
	core, _ := embellishedCore(e)
	if core.Kind != mathexpr.KindOperator {
		return 0
	}
	return core.Flags
}

func isWhitespaceText(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
