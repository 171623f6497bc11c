package testing

import (
	"bytes"
	"context"
	"io"

	"github.com/tarantool/go-iproto"
	"github.com/tarantool/go-tarantool/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// MockRequest is an empty request used to build futures in MockDoer.
type MockRequest struct{}

// NewMockRequest creates an empty MockRequest.
func NewMockRequest() *MockRequest {
	return &MockRequest{}
}

// Type returns an iproto type for MockRequest.
func (req *MockRequest) Type() iproto.Type {
	return iproto.Type(0)
}

// Async returns if MockRequest expects a response.
func (req *MockRequest) Async() bool {
	return false
}

// Body writes nothing, MockRequest has no body.
func (req *MockRequest) Body(_ tarantool.SchemaResolver, _ *msgpack.Encoder) error {
	return nil
}

// Ctx returns a context of the MockRequest.
func (req *MockRequest) Ctx() context.Context {
	return context.Background()
}

// Response creates a response for the MockRequest.
func (req *MockRequest) Response(header tarantool.Header, body io.Reader) (tarantool.Response, error) {
	return CreateMockResponse(header, body)
}

// CallBody returns the function name and the decoded arguments of a call request
// captured by MockDoer.
func CallBody(t T, req tarantool.Request) (string, []any) {
	t.Helper()

	var buf bytes.Buffer

	err := req.Body(nil, msgpack.NewEncoder(&buf))
	if err != nil {
		t.Fatalf("failed to encode request body: %s", err)
	}

	var body map[int]any

	err = msgpack.NewDecoder(&buf).Decode(&body)
	if err != nil {
		t.Fatalf("failed to decode request body: %s", err)
	}

	name, _ := body[int(iproto.IPROTO_FUNCTION_NAME)].(string)
	args, _ := body[int(iproto.IPROTO_TUPLE)].([]any)

	return name, args
}
