package cretrans

import (
	"fmt"
	"strings"

	"github.com/stenocode/cretrans/rtflang"
)

// FileParseError is a structural error encountered while parsing an RTF
// dictionary file: a missing header, an unterminated group, a missing
// closing brace. It carries a position -- never raised by the pure
// translator core, which is total.
type FileParseError struct {
	Pos     rtflang.Pos
	Message string
}

func (e FileParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

// FileParseErrors aggregates every structural error found while parsing
// a dictionary file.
type FileParseErrors struct {
	Errors []FileParseError
}

func (e FileParseErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("cretrans: dictionary file parse error:\n\n")
	for _, fe := range e.Errors {
		msg.WriteString(fmt.Sprintf("%d:%d: %s\n", fe.Pos.Line, fe.Pos.Col, fe.Message))
	}
	return msg.String()
}
