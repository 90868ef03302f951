package errno

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e *Errno) Error() string {
	return e.Message
}

// Is matches by code so errors.Is works across WithMessage copies.
func (e *Errno) Is(target error) bool {
	t, ok := target.(*Errno)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithMessage returns a copy of the errno carrying a specific message,
// typically the verbatim error text from the server.
func (e *Errno) WithMessage(msg string) *Errno {
	if msg == "" {
		return e
	}
	return &Errno{Code: e.Code, Message: msg}
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	switch typed := err.(type) {
	case *Errno:
		return typed.Code, typed.Message
	default:
		return ErrUnknownServer.Code, err.Error()
	}
}

// Common Errors
var (
	OK              = &Errno{Code: 0, Message: "Success"}
	ErrFlowState    = &Errno{Code: 10001, Message: "Operation not allowed in the current state"}
	ErrInFlight     = &Errno{Code: 10002, Message: "A submission is already in progress"}
	ErrBind         = &Errno{Code: 10003, Message: "Error occurred while binding the request body to the struct"}
	ErrUnauthorized = &Errno{Code: 10004, Message: "Not authenticated"}
)

// Local validation errors (20000+); these never reach the network.
var (
	ErrInvalidInput     = &Errno{Code: 20101, Message: "Please enter a valid amount"}
	ErrIncompleteSecret = &Errno{Code: 20102, Message: "Please enter a complete 6-digit PIN"}
	ErrSecretConsumed   = &Errno{Code: 20103, Message: "PIN has already been used"}
)

// Server-originated errors (30000+); the message is replaced by the
// server's own text when the response body carries one.
var (
	ErrAuthorization     = &Errno{Code: 30101, Message: "Invalid PIN"}
	ErrLimitExceeded     = &Errno{Code: 30102, Message: "Transfer limit exceeded"}
	ErrInsufficientFunds = &Errno{Code: 30103, Message: "Insufficient balance"}
	ErrNetwork           = &Errno{Code: 30201, Message: "Network error, please check your connection and try again"}
	ErrUnknownServer     = &Errno{Code: 30202, Message: "Something went wrong, please try again later"}
)
