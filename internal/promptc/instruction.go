package promptc

import (
	_ "embed"
	"strings"
)

//go:embed instruction.tmpl
var metaInstruction string

// MetaInstruction returns the fixed synthesis instruction sent as the
// system message when asking a model to turn compiled project and copy
// context into a final system prompt.
func MetaInstruction() string {
	return strings.TrimSpace(metaInstruction)
}
