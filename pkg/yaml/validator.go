package yaml

// ValidateString checks whether content is syntactically valid YAML (per this
// package's block-style grammar), running the real streaming parser with
// a no-op handler rather than a second, ad hoc set of line rules.
//
// Returns nil if valid, or a *SyntaxError describing the first fault.
func ValidateString(content string) error {
	return Validate([]byte(content))
}
