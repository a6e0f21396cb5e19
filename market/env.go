package market

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pixory/pixory/comm"
)

// Env carries the block context the host runtime supplies on every call.
type Env struct {
	BlockTime time.Time
}

// MessageInfo identifies the verified caller and the funds attached to the
// call. Signature checks happen in the host before this engine runs.
type MessageInfo struct {
	Sender string
	Funds  []comm.Coin
}

const (
	statusOK    = 1
	statusError = -1
)

type ResponseAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the effect list handed back to the host: attribute pairs for
// the event log plus the bank transfers to apply atomically with the call.
type Response struct {
	Attributes []ResponseAttribute `json:"attributes"`
	Messages   []comm.BankMsg      `json:"messages"`
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, ResponseAttribute{Key: key, Value: value})
	return r
}

func (r *Response) AddMessages(msgs []comm.BankMsg) *Response {
	r.Messages = append(r.Messages, msgs...)
	return r
}

func commonResponse(key, method string, status int, message string, msgs []comm.BankMsg) *Response {
	res := &Response{}
	res.AddMessages(msgs)
	res.AddAttribute("key", key)
	res.AddAttribute("method", method)
	res.AddAttribute("status", fmt.Sprintf("%d", status))
	if message != "" {
		res.AddAttribute("message", message)
	}
	res.AddAttribute("trace_id", traceID(key, method))
	return res
}

// traceID derives a stable id for the (key, method) pair so the host can
// correlate repeated calls without the engine producing nondeterminism.
func traceID(key, method string) string {
	return uuid.NewV5(uuid.NamespaceOID, key+":"+method).String()
}
