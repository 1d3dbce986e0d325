package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionScope_Allows(t *testing.T) {
	ops := []Operation{
		OperationCreate, OperationRead, OperationUpdate,
		OperationDelete, OperationApprove, OperationReject,
	}

	for _, granted := range ops {
		scope := &PermissionScope{ResourceType: "purchase.order"}
		tru := true
		scope.Merge(flagFor(granted, &tru))

		for _, op := range ops {
			assert.Equal(t, op == granted, scope.Allows(op), "granted=%s checked=%s", granted, op)
		}
	}
}

func TestPermissionScope_AllowsNilScope(t *testing.T) {
	var scope *PermissionScope
	assert.False(t, scope.Allows(OperationRead))
}

func TestPermissionScope_MergeOnlyPresentFields(t *testing.T) {
	tru, fls := true, false
	scope := &PermissionScope{ResourceType: "x", CanCreate: true, CanDelete: true}

	scope.Merge(ScopeFlags{CanRead: &tru, CanDelete: &fls})

	assert.True(t, scope.CanCreate)
	assert.True(t, scope.CanRead)
	assert.False(t, scope.CanDelete)
	assert.False(t, scope.CanUpdate)
}

func flagFor(op Operation, v *bool) ScopeFlags {
	switch op {
	case OperationCreate:
		return ScopeFlags{CanCreate: v}
	case OperationRead:
		return ScopeFlags{CanRead: v}
	case OperationUpdate:
		return ScopeFlags{CanUpdate: v}
	case OperationDelete:
		return ScopeFlags{CanDelete: v}
	case OperationApprove:
		return ScopeFlags{CanApprove: v}
	case OperationReject:
		return ScopeFlags{CanReject: v}
	}

	return ScopeFlags{}
}
