package yaml

import (
	"fmt"

	"github.com/shapestone/yamlsax/internal/parser"
)

// SyntaxError reports where and why a parse failed. The zero ResultCode
// (Success) never appears wrapped in a SyntaxError — ReadDocument and
// Parse return nil error in that case.
type SyntaxError struct {
	Code       string
	Line       int
	LineOffset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("yaml: %s at line %d", e.Code, e.Line+1)
}

func errFromResult(r parser.Result) error {
	if r.Code == parser.Success {
		return nil
	}
	return &SyntaxError{
		Code:       r.Code.String(),
		Line:       r.Line,
		LineOffset: r.LineOffset,
	}
}
