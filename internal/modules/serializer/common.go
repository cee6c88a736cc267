package serializer

// Response is the envelope every endpoint returns. Data is omitted on
// errors; Error is omitted on success. No internal identifiers or stack
// traces ever reach the body.
type Response struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Pagination any    `json:"pagination,omitempty"`
}

// OK
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Paged
func Paged(data, pagination any) Response {
	return Response{Success: true, Data: data, Pagination: pagination}
}

// Err
func Err(msg string) Response {
	return Response{Success: false, Error: msg}
}
