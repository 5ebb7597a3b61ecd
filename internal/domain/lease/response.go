package lease

// Response carries either a contract or the reasons none was concluded.
type Response struct {
	contract *Contract
	errors   []string
	failed   bool
}

func NewContractResponse(contract *Contract) *Response {
	return &Response{contract: contract}
}

func NewErrorResponse(message string, more ...string) *Response {
	return &Response{errors: append([]string{message}, more...)}
}

// NewFailureResponse reports a rejection caused by a collaborator, not by the request.
func NewFailureResponse(message string) *Response {
	return &Response{errors: []string{message}, failed: true}
}

// Contract is nil when the lease was rejected.
func (r *Response) Contract() *Contract { return r.contract }

func (r *Response) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

func (r *Response) Succeeded() bool {
	return r.contract != nil
}

func (r *Response) Failed() bool {
	return r.failed
}
