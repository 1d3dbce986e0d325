package entity

// Operation is the closed set of actions the resolver can forward.
type Operation int

const (
	OperationCreate Operation = iota + 1
	OperationRead
	OperationUpdate
	OperationDelete
	OperationApprove
	OperationReject
)

var operationNames = map[string]Operation{
	"create":  OperationCreate,
	"read":    OperationRead,
	"update":  OperationUpdate,
	"delete":  OperationDelete,
	"approve": OperationApprove,
	"reject":  OperationReject,
}

// ParseOperation maps an action path segment onto an Operation. Matching is exact.
func ParseOperation(action string) (Operation, bool) {
	op, ok := operationNames[action]

	return op, ok
}

func (o Operation) String() string {
	switch o {
	case OperationCreate:
		return "create"
	case OperationRead:
		return "read"
	case OperationUpdate:
		return "update"
	case OperationDelete:
		return "delete"
	case OperationApprove:
		return "approve"
	case OperationReject:
		return "reject"
	default:
		return "unknown"
	}
}

// RemoteMethod is the backend method invoked for the operation.
func (o Operation) RemoteMethod() string {
	switch o {
	case OperationCreate:
		return "create"
	case OperationRead:
		return "search_read"
	case OperationUpdate:
		return "write"
	case OperationDelete:
		return "unlink"
	case OperationApprove:
		return "button_confirm_approve"
	case OperationReject:
		return "button_reject"
	default:
		return ""
	}
}

// RequiresResourceID reports whether the operation targets a single existing record.
func (o Operation) RequiresResourceID() bool {
	switch o {
	case OperationUpdate, OperationDelete, OperationApprove, OperationReject:
		return true
	default:
		return false
	}
}
