package validation

// FieldErrors maps a request field name to what is wrong with it. A nil or
// empty map means the input passed validation.
type FieldErrors map[string]string

// Any reports whether at least one field failed validation.
func (e FieldErrors) Any() bool {
	return len(e) > 0
}
