package errors

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NotFound builds the 404 returned when an id lookup misses.
// Message names the missing entity, e.g. "Thread not found".
func NotFound(entity string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: entity + " not found", StatusCode: 404}
}
