package model

// Result statuses. Every external caller (API, scheduler, tests) switches
// on these two values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the tagged shape returned by every public operation.
type Result struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success builds a success Result with optional payload.
func Success(message string, data interface{}) Result {
	return Result{Status: StatusSuccess, Message: message, Data: data}
}

// Error builds an error Result.
func Error(message string) Result {
	return Result{Status: StatusError, Message: message}
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Status == StatusSuccess }
