package service

// Error is a domain failure the handler layer maps onto an HTTP status.
// Anything the service returns that is not an *Error is treated as an
// internal failure and reported with a generic message.
type Error struct {
	Kind    Kind
	Message string
}

type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindConflict
	KindNotFound
)

func (e *Error) Error() string {
	return e.Message
}

func badRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}
