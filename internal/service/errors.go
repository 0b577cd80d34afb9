package service

// ValidationError is returned when a request fails input checks. Message is
// safe to show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
