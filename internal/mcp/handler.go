// internal/mcp/handler.go
// Envelope handling: parse one JSON-RPC frame, validate it, route the method.

package mcp

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"
)

// ====== Structured log payload ======

type mcpLog struct {
	At         string `json:"@t,omitempty"`     // RFC3339 timestamp
	Level      string `json:"level,omitempty"`  // info|warn|error
	Event      string `json:"event,omitempty"`  // mcp.request
	Method     string `json:"method,omitempty"` // listTools|callTool
	Tool       string `json:"tool,omitempty"`
	RPCID      string `json:"rpc_id,omitempty"` // raw JSON-RPC id
	DurationMS int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
}

func logJSON(l mcpLog) {
	l.At = time.Now().Format(time.RFC3339Nano)
	if l.Level == "" {
		l.Level = "info"
	}
	b, _ := json.Marshal(l)
	log.Println(string(b))
}

// ====== Parse & validate ======

// ParseRequest decodes one raw frame. On malformed JSON it returns a ready
// ParseError response instead; when the broken frame still exposes a usable
// id field that id is carried over, otherwise the response id is null.
func ParseRequest(raw []byte) (*Request, *Response) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, NewError(recoverID(raw), ErrParse("Parse error: "+err.Error()))
	}
	return &req, nil
}

// recoverID pulls the id out of a frame that failed full decoding.
func recoverID(raw []byte) json.RawMessage {
	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}
	return probe.ID
}

// ValidateEnvelope rejects frames that are not JSON-RPC 2.0 calls.
func ValidateEnvelope(req *Request) *RPCError {
	if req.JSONRPC != Version {
		return ErrInvalidRequest(`Invalid Request: jsonrpc must be "2.0"`)
	}
	if strings.TrimSpace(req.Method) == "" {
		return ErrInvalidRequest("Invalid Request: method is required")
	}
	return nil
}

// ====== Method routing ======

// HandleRequest routes one validated request and always returns a response.
// A request without an id is answered with id null; every query gets exactly
// one response envelope.
func HandleRequest(ctx context.Context, req *Request) *Response {
	start := time.Now()
	resp, tool := dispatch(ctx, req)

	l := mcpLog{
		Event:      "mcp.request",
		Method:     req.Method,
		Tool:       tool,
		RPCID:      strings.TrimSpace(string(req.ID)),
		DurationMS: time.Since(start).Milliseconds(),
	}
	if resp.Error != nil {
		l.Level = "warn"
		if resp.Error.Code == CodeInternalError {
			l.Level = "error"
		}
		l.Error = resp.Error.Message
	}
	logJSON(l)
	return resp
}

func dispatch(ctx context.Context, req *Request) (*Response, string) {
	switch req.Method {
	case MethodListTools:
		defs, err := LoadToolDefs()
		if err != nil {
			return NewError(req.ID, ErrInternal("tool catalog unavailable: "+err.Error())), ""
		}
		return NewResult(req.ID, ListToolsResult{Tools: defs}), ""

	case MethodCallTool:
		var p CallToolParams
		if len(req.Params) == 0 {
			return NewError(req.ID, ErrInvalidParams("Invalid params: params object is required")), ""
		}
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return NewError(req.ID, ErrInvalidParams("Invalid params: "+err.Error())), ""
		}
		if strings.TrimSpace(p.Name) == "" {
			return NewError(req.ID, ErrInvalidParams("Invalid params: tool name is required")), ""
		}
		fn, ok := Get(p.Name)
		if !ok {
			return NewError(req.ID, ErrMethodNotFound("Unknown tool: "+p.Name)), p.Name
		}
		result, rpcErr := fn(ctx, p.Arguments)
		if rpcErr != nil {
			return NewError(req.ID, rpcErr), p.Name
		}
		return NewResult(req.ID, result), p.Name

	default:
		return NewError(req.ID, ErrMethodNotFound("Method not found: "+req.Method)), ""
	}
}

// HandleRaw runs the full parse/validate/route pipeline on one frame.
// Transports that treat every inbound frame uniformly (the WebSocket shell)
// use this; the split transport calls the stages itself to map envelope
// failures onto HTTP status codes.
func HandleRaw(ctx context.Context, raw []byte) *Response {
	req, errResp := ParseRequest(raw)
	if errResp != nil {
		logJSON(mcpLog{Level: "warn", Event: "mcp.request", Error: errResp.Error.Message})
		return errResp
	}
	if rpcErr := ValidateEnvelope(req); rpcErr != nil {
		logJSON(mcpLog{Level: "warn", Event: "mcp.request", Method: req.Method, RPCID: strings.TrimSpace(string(req.ID)), Error: rpcErr.Message})
		return NewError(req.ID, rpcErr)
	}
	return HandleRequest(ctx, req)
}
