package models

import "encoding/json"

// TRPCRequest is the body shape tRPC expects for a mutation.
type TRPCRequest[T any] struct {
	JSON T `json:"json"`
}

// TRPCResponse keeps data raw so a missing field can be told apart from a
// present but invalid one.
type TRPCResponse struct {
	Result *TRPCResult `json:"result"`
}

type TRPCResult struct {
	Data json.RawMessage `json:"data"`
}

// HasData reports whether result.data is present and not null.
func (r TRPCResponse) HasData() bool {
	if r.Result == nil || len(r.Result.Data) == 0 {
		return false
	}
	return string(r.Result.Data) != "null"
}
