package claimflow

// Method names reported in the "method" response attribute
const (
	AttrMethod = "method"

	MethodInstantiate  = "instantiate"
	MethodSubmitClaim  = "submit_claim"
	MethodApproveClaim = "approve_claim"
	MethodQuery        = "query"
)

// NewResponse creates an empty acknowledgment for a request
func NewResponse(requestID string) *Response {
	return &Response{
		RequestID:  requestID,
		Attributes: []Attribute{},
	}
}

// AddAttribute appends a key/value attribute and returns the response for chaining
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// Attribute returns the value of the first attribute with the given key
func (r *Response) Attribute(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Method returns the value of the "method" attribute, or "" if absent
func (r *Response) Method() string {
	method, _ := r.Attribute(AttrMethod)
	return method
}

// Variant returns the method name of the single variant set on the message.
// ok is false when zero or more than one variant is set.
func (m ExecuteMsg) Variant() (method string, ok bool) {
	count := 0
	if m.SubmitClaim != nil {
		method = MethodSubmitClaim
		count++
	}
	if m.ApproveClaim != nil {
		method = MethodApproveClaim
		count++
	}
	if count != 1 {
		return "", false
	}
	return method, true
}
