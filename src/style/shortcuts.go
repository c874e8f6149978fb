package style

// Shortcut bundles are pure parameter tables, resolved by merging them into a
// static element's parameters before validation. They carry no behavior.

// Bundle is a loose parameter map, keyed the same way static element
// parameters are.
type Bundle = map[string]any

var (
	RedLine    = Bundle{"linestyle": "r-"}
	BlueLine   = Bundle{"linestyle": "b-"}
	GreenLine  = Bundle{"linestyle": "g-"}
	BlackLine  = Bundle{"linestyle": "k-"}
	RedDotted  = Bundle{"linestyle": "r:"}
	BlueDotted = Bundle{"linestyle": "b:"}
	RedDashed  = Bundle{"linestyle": "r--"}
	BlueDashed = Bundle{"linestyle": "b--"}
	ThinStroke = Bundle{"width": 1.0}
	WideStroke = Bundle{"width": 4.0}
)

// ByName resolves the named shortcut table, for callers taking bundle names
// from configuration rather than code.
var ByName = map[string]Bundle{
	"red_line":    RedLine,
	"blue_line":   BlueLine,
	"green_line":  GreenLine,
	"black_line":  BlackLine,
	"red_dotted":  RedDotted,
	"blue_dotted": BlueDotted,
	"red_dashed":  RedDashed,
	"blue_dashed": BlueDashed,
	"thin_stroke": ThinStroke,
	"wide_stroke": WideStroke,
}
