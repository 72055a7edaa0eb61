// mcp/protocol.go
// JSON-RPC 2.0 envelope types for the MCP relay.

package mcp

import "encoding/json"

const Version = "2.0"

// Supported methods.
const (
	MethodListTools = "listTools"
	MethodCallTool  = "callTool"
)

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is one inbound JSON-RPC frame. ID stays raw so string, number and
// null ids round-trip byte-exactly into the response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response carries exactly one of Result or Error. The id field is always
// emitted; a nil ID marshals as null.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *RPCError) Error() string { return e.Message }

// ====== Envelope constructors ======

func NewResult(id json.RawMessage, result interface{}) *Response {
	return &Response{JSONRPC: Version, ID: id, Result: result}
}

func NewError(id json.RawMessage, rpcErr *RPCError) *Response {
	return &Response{JSONRPC: Version, ID: id, Error: rpcErr}
}

func ErrParse(msg string) *RPCError { return &RPCError{Code: CodeParseError, Message: msg} }

func ErrInvalidRequest(msg string) *RPCError {
	return &RPCError{Code: CodeInvalidRequest, Message: msg}
}

func ErrMethodNotFound(msg string) *RPCError {
	return &RPCError{Code: CodeMethodNotFound, Message: msg}
}

func ErrInvalidParams(msg string) *RPCError {
	return &RPCError{Code: CodeInvalidParams, Message: msg}
}

func ErrInternal(msg string) *RPCError { return &RPCError{Code: CodeInternalError, Message: msg} }

// ====== Method payloads ======

// CallToolParams is the params shape of the callTool method.
type CallToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ToolContent is one content block inside a tool result.
type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the callTool result payload.
type ToolResult struct {
	Content []ToolContent `json:"content"`
}

// TextResult wraps plain text in the single-block result shape.
func TextResult(text string) ToolResult {
	return ToolResult{Content: []ToolContent{{Type: "text", Text: text}}}
}

// ListToolsResult is the listTools result payload.
type ListToolsResult struct {
	Tools []ToolDef `json:"tools"`
}
