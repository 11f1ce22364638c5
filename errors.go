package awardwallet

import "fmt"

// ValidationError reports a payload that does not satisfy a record shape: a
// missing required field, a primitive type mismatch, a malformed timestamp, or
// an enumeration value outside its declared set. Path locates the offending
// field within the payload, e.g. "accounts[2].properties[0].name".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validate %s: %s", e.Path, e.Reason)
}

func errMissing(path, field string) error {
	return &ValidationError{Path: joinPath(path, field), Reason: "missing required field"}
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func elemPath(path, field string, i int) string {
	return fmt.Sprintf("%s[%d]", joinPath(path, field), i)
}
