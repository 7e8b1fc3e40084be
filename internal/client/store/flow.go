package store

// FlowState is the lifecycle of the latest request of one operation
// family. IsLoading and IsError are never both true.
type FlowState struct {
	IsLoading    bool
	IsError      bool
	ErrorMessage string
}

func pendingFlow() FlowState { return FlowState{IsLoading: true} }

func fulfilledFlow() FlowState { return FlowState{} }

func rejectedFlow(msg, fallback string) FlowState {
	if msg == "" {
		msg = fallback
	}
	return FlowState{IsError: true, ErrorMessage: msg}
}

// Operation names a family of user-list requests.
type Operation int

const (
	OpFetch Operation = iota
	OpCreate
	OpUpdate
	OpDelete

	numOperations
)

var operationNames = [numOperations]string{"fetch", "create", "update", "delete"}

func (o Operation) String() string {
	if o < 0 || o >= numOperations {
		return "unknown"
	}
	return operationNames[o]
}
