package license

import "fmt"

// Verify returns one human-readable problem per violated required-field
// rule. It never fails: an invalid license yields messages, a valid one an
// empty list. Optional fields are not inspected and their absence is never
// a problem.
func (l *License) Verify() []string {
	var problems []string

	if l.id == "" {
		problems = append(problems, "missing required license ID")
	}
	if l.name == "" {
		problems = append(problems, "missing required license name")
	}
	if l.body == "" {
		problems = append(problems, fmt.Sprintf("missing required license text for %s", l.id))
	}

	return problems
}
