// Package directive defines the tagged directive model shared by the
// Plover and RTF/CRE dialects: a closed set of values describing what a
// steno translation does (emit text, switch case mode, attach a word,
// invoke a macro, ...) independent of how either dialect spells it.
//
// The model carries no behavior. Parsers produce directive sequences,
// formatters consume them; nothing here ever capitalizes or attaches
// anything for real.
package directive

// Kind tags which variant a Directive holds.
type Kind int

const (
	RawStringKind Kind = iota + 1
	CancelKind
	NoopKind
	SpaceKind
	HardSpaceKind
	DeleteStrokeKind
	RepeatLastStrokeKind
	RetroToggleStarKind
	RetroInsertSpaceKind
	RetroDeleteSpaceKind
	ParagraphKind
	FingerspellKind
	StitchKind
	PunctuationKind
	KeyComboKind
	CommandKind
	MetaKind
	MacroKind
	CurrencyKind
	CaseModeKind
	SpaceModeKind
	ResetCaseAndSpaceKind
	ForceCapitalizeKind
	ForceLowercaseKind
	ForceCapitalizeWordKind
	RetroForceCapitalizeKind
	RetroForceLowercaseKind
	RetroForceCapitalizeWordKind
	AttachRawKind
	AttachPrefixKind
	AttachSuffixKind
	AttachInfixKind
	CarryCapRawKind
	CarryCapPrefixKind
	CarryCapSuffixKind
	CarryCapInfixKind
	// OrthoAttachKind is a parser-internal marker, produced only by the RTF
	// parser and consumed only by the RTF->Plover attach fixup. It must
	// never reach a Plover->RTF formatter.
	OrthoAttachKind
	lastKind
)

func (k Kind) String() string {
	return kindNames[k]
}

func (k Kind) GoString() string {
	return kindNames[k]
}

var kindNames = map[Kind]string{
	RawStringKind:                "RawString",
	CancelKind:                   "Cancel",
	NoopKind:                     "Noop",
	SpaceKind:                    "Space",
	HardSpaceKind:                "HardSpace",
	DeleteStrokeKind:             "DeleteStroke",
	RepeatLastStrokeKind:         "RepeatLastStroke",
	RetroToggleStarKind:          "RetroToggleStar",
	RetroInsertSpaceKind:         "RetroInsertSpace",
	RetroDeleteSpaceKind:         "RetroDeleteSpace",
	ParagraphKind:                "Paragraph",
	FingerspellKind:              "Fingerspell",
	StitchKind:                   "Stitch",
	PunctuationKind:              "Punctuation",
	KeyComboKind:                 "KeyCombo",
	CommandKind:                  "Command",
	MetaKind:                     "Meta",
	MacroKind:                    "Macro",
	CurrencyKind:                 "Currency",
	CaseModeKind:                 "CaseMode",
	SpaceModeKind:                "SpaceMode",
	ResetCaseAndSpaceKind:        "ResetCaseAndSpace",
	ForceCapitalizeKind:          "ForceCapitalize",
	ForceLowercaseKind:           "ForceLowercase",
	ForceCapitalizeWordKind:      "ForceCapitalizeWord",
	RetroForceCapitalizeKind:     "RetroForceCapitalize",
	RetroForceLowercaseKind:      "RetroForceLowercase",
	RetroForceCapitalizeWordKind: "RetroForceCapitalizeWord",
	AttachRawKind:                "AttachRaw",
	AttachPrefixKind:             "AttachPrefix",
	AttachSuffixKind:             "AttachSuffix",
	AttachInfixKind:              "AttachInfix",
	CarryCapRawKind:              "CarryCapRaw",
	CarryCapPrefixKind:           "CarryCapPrefix",
	CarryCapSuffixKind:           "CarryCapSuffix",
	CarryCapInfixKind:            "CarryCapInfix",
	OrthoAttachKind:              "OrthoAttach",
}

func init() {
	// Make sure we panic early if a variant is ever added here without a name.
	for k := RawStringKind; k < lastKind; k++ {
		if kindNames[k] == "" {
			panic("directive: missing kindNames entry for Kind")
		}
	}
}

// Case is the CaseMode payload.
type Case int

const (
	CaseSentence Case = iota + 1
	CaseLower
	CaseUpper
	CaseTitle
	CaseCamel
	CaseSnake
)

// ParagraphMode is the Paragraph payload.
type ParagraphMode int

const (
	ParagraphDefault ParagraphMode = iota + 1
	ParagraphContin
)

// Directive is a single tagged directive value. Only the fields relevant
// to Kind are meaningful; callers should go through the constructors below
// rather than building a literal by hand, so irrelevant fields are never
// accidentally set.
type Directive struct {
	Kind Kind

	Text string // RawString/Fingerspell/Stitch/Punctuation/KeyCombo/Attach*/CarryCap* text

	Case          Case
	ParagraphMode ParagraphMode

	Name    string // Command/Meta/Macro name
	HasArg  bool
	Arg     string

	HasSpace bool // SpaceMode: false means "reset to default"
	Space    string

	HasPre  bool
	Pre     string
	HasPost bool
	Post    string
}

func RawString(s string) Directive { return Directive{Kind: RawStringKind, Text: s} }
func Cancel() Directive             { return Directive{Kind: CancelKind} }
func Noop() Directive                { return Directive{Kind: NoopKind} }
func Space() Directive                { return Directive{Kind: SpaceKind} }
func HardSpace() Directive            { return Directive{Kind: HardSpaceKind} }
func DeleteStroke() Directive         { return Directive{Kind: DeleteStrokeKind} }
func RepeatLastStroke() Directive     { return Directive{Kind: RepeatLastStrokeKind} }
func RetroToggleStar() Directive      { return Directive{Kind: RetroToggleStarKind} }
func RetroInsertSpace() Directive     { return Directive{Kind: RetroInsertSpaceKind} }
func RetroDeleteSpace() Directive     { return Directive{Kind: RetroDeleteSpaceKind} }

func Paragraph(mode ParagraphMode) Directive {
	return Directive{Kind: ParagraphKind, ParagraphMode: mode}
}

func Fingerspell(letters string) Directive { return Directive{Kind: FingerspellKind, Text: letters} }
func Stitch(letters string) Directive      { return Directive{Kind: StitchKind, Text: letters} }
func Punctuation(punct string) Directive   { return Directive{Kind: PunctuationKind, Text: punct} }
func KeyCombo(combo string) Directive      { return Directive{Kind: KeyComboKind, Text: combo} }

func Command(name string, arg *string) Directive {
	return namedDirective(CommandKind, name, arg)
}

func Meta(name string, arg *string) Directive {
	return namedDirective(MetaKind, name, arg)
}

func Macro(name string, arg *string) Directive {
	return namedDirective(MacroKind, name, arg)
}

func namedDirective(kind Kind, name string, arg *string) Directive {
	d := Directive{Kind: kind, Name: name}
	if arg != nil {
		d.HasArg = true
		d.Arg = *arg
	}
	return d
}

// Currency builds a Currency directive; nil means the corresponding side
// is None, not an empty string, per the "empty sides are None" policy.
func Currency(pre, post *string) Directive {
	d := Directive{Kind: CurrencyKind}
	if pre != nil {
		d.HasPre = true
		d.Pre = *pre
	}
	if post != nil {
		d.HasPost = true
		d.Post = *post
	}
	return d
}

func CaseMode(c Case) Directive { return Directive{Kind: CaseModeKind, Case: c} }

// SpaceMode builds a SpaceMode directive; nil means reset to default space.
func SpaceMode(replacement *string) Directive {
	d := Directive{Kind: SpaceModeKind}
	if replacement != nil {
		d.HasSpace = true
		d.Space = *replacement
	}
	return d
}

func ResetCaseAndSpace() Directive          { return Directive{Kind: ResetCaseAndSpaceKind} }
func ForceCapitalize() Directive            { return Directive{Kind: ForceCapitalizeKind} }
func ForceLowercase() Directive              { return Directive{Kind: ForceLowercaseKind} }
func ForceCapitalizeWord() Directive         { return Directive{Kind: ForceCapitalizeWordKind} }
func RetroForceCapitalize() Directive        { return Directive{Kind: RetroForceCapitalizeKind} }
func RetroForceLowercase() Directive         { return Directive{Kind: RetroForceLowercaseKind} }
func RetroForceCapitalizeWord() Directive    { return Directive{Kind: RetroForceCapitalizeWordKind} }

func AttachRaw() Directive               { return Directive{Kind: AttachRawKind} }
func AttachPrefix(s string) Directive    { return Directive{Kind: AttachPrefixKind, Text: s} }
func AttachSuffix(s string) Directive    { return Directive{Kind: AttachSuffixKind, Text: s} }
func AttachInfix(s string) Directive     { return Directive{Kind: AttachInfixKind, Text: s} }

func CarryCapRaw(s string) Directive    { return Directive{Kind: CarryCapRawKind, Text: s} }
func CarryCapPrefix(s string) Directive { return Directive{Kind: CarryCapPrefixKind, Text: s} }
func CarryCapSuffix(s string) Directive { return Directive{Kind: CarryCapSuffixKind, Text: s} }
func CarryCapInfix(s string) Directive  { return Directive{Kind: CarryCapInfixKind, Text: s} }

// OrthoAttach is RTF-only; the RTF->Plover attach fixup consumes it and it
// must never be handed to the Plover->RTF formatter.
func OrthoAttach() Directive { return Directive{Kind: OrthoAttachKind} }

// ArgPtr is a small helper for building optional-arg directives from call
// sites that have a bool/string pair rather than a ready-made pointer.
func ArgPtr(has bool, s string) *string {
	if !has {
		return nil
	}
	return &s
}
