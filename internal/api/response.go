package api

// Response is the JSON envelope shared by every endpoint. Data is always
// present (null on errors) so clients can unmarshal into a fixed shape.
type Response struct {
	Success          bool              `json:"success"`
	Data             any               `json:"data"`
	Message          string            `json:"message,omitempty"`
	Error            string            `json:"error,omitempty"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}

// ValidationError reports a single failed field check.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error codes returned in Response.Error.
const (
	CodeInvalidCart     = "INVALID_CART"
	CodeInvalidProducts = "INVALID_PRODUCTS"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInvalidID       = "INVALID_ID"
	CodeProductNotFound = "PRODUCT_NOT_FOUND"
	CodeNotFound        = "NOT_FOUND"
	CodeRateLimited     = "RATE_LIMIT_EXCEEDED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// OK builds a success envelope.
func OK(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// Err builds a failure envelope with a nil data field.
func Err(code, message string) Response {
	return Response{Success: false, Error: code, Message: message}
}
