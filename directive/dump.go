package directive

import "github.com/alecthomas/repr"

// Dump renders a directive sequence for diagnostics and test failure
// output. It is never consumed by the transcoder itself.
func Dump(seq []Directive) string {
	return repr.String(seq, repr.Indent("  "))
}
