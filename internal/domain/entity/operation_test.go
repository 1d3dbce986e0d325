package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		action       string
		op           Operation
		remoteMethod string
		needsID      bool
	}{
		{action: "create", op: OperationCreate, remoteMethod: "create"},
		{action: "read", op: OperationRead, remoteMethod: "search_read"},
		{action: "update", op: OperationUpdate, remoteMethod: "write", needsID: true},
		{action: "delete", op: OperationDelete, remoteMethod: "unlink", needsID: true},
		{action: "approve", op: OperationApprove, remoteMethod: "button_confirm_approve", needsID: true},
		{action: "reject", op: OperationReject, remoteMethod: "button_reject", needsID: true},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			op, ok := ParseOperation(tt.action)
			assert.True(t, ok)
			assert.Equal(t, tt.op, op)
			assert.Equal(t, tt.action, op.String())
			assert.Equal(t, tt.remoteMethod, op.RemoteMethod())
			assert.Equal(t, tt.needsID, op.RequiresResourceID())
		})
	}
}

func TestParseOperation_Unsupported(t *testing.T) {
	for _, action := range []string{"", "list", "Create", "READ", "cancel"} {
		_, ok := ParseOperation(action)
		assert.False(t, ok, action)
	}
}
