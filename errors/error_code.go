package errors

// ErrorCode is the application error code returned in error bodies
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_VALIDATION_FAILED ErrorCode = 1004

	ErrorCode_NOTE_NOT_FOUND ErrorCode = 2001

	ErrorCode_VIEW_NOT_FOUND     ErrorCode = 3000
	ErrorCode_VIEW_INVALID_EVENT ErrorCode = 3001
	ErrorCode_VIEW_STATE_FAILED  ErrorCode = 3002

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:          "VALIDATION_FAILED",
	ErrorCode_NOTE_NOT_FOUND:             "NOTE_NOT_FOUND",
	ErrorCode_VIEW_NOT_FOUND:             "VIEW_NOT_FOUND",
	ErrorCode_VIEW_INVALID_EVENT:         "VIEW_INVALID_EVENT",
	ErrorCode_VIEW_STATE_FAILED:          "VIEW_STATE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
