package auth

// Result is the outcome of an auth action: either a navigation target or a
// set of field-keyed validation errors for the caller to render. Validation
// failures are data, not Go errors; only store and infrastructure failures
// travel on the error return.
type Result struct {
	// RedirectTo is the post-action navigation destination. Empty when the
	// action failed validation.
	RedirectTo string
	// Errors maps form field names ("email", "password") to user-facing
	// messages. Nil on success.
	Errors map[string]string
}

// OK reports whether the action succeeded.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

func redirect(to string) Result {
	return Result{RedirectTo: to}
}

func fieldError(field, msg string) Result {
	return Result{Errors: map[string]string{field: msg}}
}
