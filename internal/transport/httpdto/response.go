package httpdto

type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func NewSuccessResponse[T any](data T) Response[T] {
	return Response[T]{
		Success: true,
		Data:    data,
	}
}

func NewErrorResponse(err string, code string) Response[any] {
	return Response[any]{
		Success: false,
		Error:   err,
		Code:    code,
	}
}

// NewInternalErrorResponse is reserved for unexpected failures. Detail is
// surfaced to ease debugging; expected errors never carry one.
func NewInternalErrorResponse(detail string) Response[any] {
	return Response[any]{
		Success: false,
		Error:   "internal server error",
		Code:    "INTERNAL_ERROR",
		Detail:  detail,
	}
}
