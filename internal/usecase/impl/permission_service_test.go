package impl

import (
	"context"
	"testing"

	"erpgate/internal/domain/entity"
	"erpgate/internal/domain/repository"
	"erpgate/internal/domain/service"
	mockRepo "erpgate/internal/mocks/repository"
	mockService "erpgate/internal/mocks/service"
	"erpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type permissionFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	perms     *mockRepo.MockPermissionRepository
	publisher *mockService.MockEventPublisher
	srv       usecase.PermissionUsecase
}

func newPermissionFixture(t *testing.T) *permissionFixture {
	f := &permissionFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		perms:     mockRepo.NewMockPermissionRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	f.srv = NewPermissionService(PermissionServiceParams{
		TxManager: f.txManager,
		Publisher: f.publisher,
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestPermissionService_ReplacePermissions(t *testing.T) {
	f := newPermissionFixture(t)
	ctx := context.Background()
	credentialID := uuid.New()

	input := usecase.PermissionsInput{
		AllowedOrigins:   []string{" erp.example.com ", "", "erp.example.com", "app.example.com"},
		AllowedEndpoints: []string{"/v1/auto"},
		PermissionScopes: []usecase.ScopeInput{
			{ModelName: "purchase.order", CanRead: boolPtr(true), CanCreate: boolPtr(true)},
			{CanRead: boolPtr(true)},
			{ModelName: "hr.employee", CanRead: boolPtr(true)},
			{ModelName: "purchase.order", CanApprove: boolPtr(true)},
		},
	}

	var saved []*entity.PermissionScope

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewPermissionRepository().Return(f.perms).Once()
	mock.InOrder(
		f.perms.EXPECT().DeleteGrants(ctx, credentialID).Return(nil).Once(),
		f.perms.EXPECT().AddOrigins(ctx, credentialID, []string{"erp.example.com", "app.example.com"}).Return(nil).Once(),
		f.perms.EXPECT().AddEndpoints(ctx, credentialID, []string{"/v1/auto"}).Return(nil).Once(),
	)
	f.perms.EXPECT().SaveScope(ctx, mock.AnythingOfType("*entity.PermissionScope")).
		Run(func(ctx context.Context, scope *entity.PermissionScope) { saved = append(saved, scope) }).
		Return(nil).Times(2)
	f.publisher.EXPECT().PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
		return e.Type == service.AuditPermissionsReplace
	})).Return(nil).Once()

	err := f.srv.ReplacePermissions(ctx, credentialID, input)

	require.NoError(t, err)
	require.Len(t, saved, 2)

	// Last entry wins for purchase.order and absent flags are false.
	assert.Equal(t, &entity.PermissionScope{CredentialID: credentialID, ResourceType: "purchase.order", CanApprove: true}, saved[0])
	assert.Equal(t, &entity.PermissionScope{CredentialID: credentialID, ResourceType: "hr.employee", CanRead: true}, saved[1])
}

func TestPermissionService_ReplacePermissions_FailureStopsTransaction(t *testing.T) {
	f := newPermissionFixture(t)
	ctx := context.Background()
	credentialID := uuid.New()

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewPermissionRepository().Return(f.perms).Once()
	f.perms.EXPECT().DeleteGrants(ctx, credentialID).Return(nil).Once()
	f.perms.EXPECT().AddOrigins(ctx, credentialID, mock.Anything).Return(errors.New("disk full")).Once()

	err := f.srv.ReplacePermissions(ctx, credentialID, usecase.PermissionsInput{
		AllowedOrigins:   []string{"erp.example.com"},
		PermissionScopes: []usecase.ScopeInput{{ModelName: "x", CanRead: boolPtr(true)}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add origins")
}

func TestPermissionService_PatchPermissions_MergesFlags(t *testing.T) {
	f := newPermissionFixture(t)
	ctx := context.Background()
	credentialID := uuid.New()
	scopeID := uuid.New()

	var saved []*entity.PermissionScope

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewPermissionRepository().Return(f.perms).Once()
	f.perms.EXPECT().AddOrigins(ctx, credentialID, []string{"erp.example.com"}).Return(nil).Once()
	f.perms.EXPECT().AddEndpoints(ctx, credentialID, []string{}).Return(nil).Once()
	f.perms.EXPECT().FindScope(ctx, credentialID, "x").
		Return(&entity.PermissionScope{ID: scopeID, CredentialID: credentialID, ResourceType: "x", CanCreate: true}, nil).Once()
	f.perms.EXPECT().FindScope(ctx, credentialID, "y").Return(nil, repository.ErrScopeNotFound).Once()
	f.perms.EXPECT().SaveScope(ctx, mock.AnythingOfType("*entity.PermissionScope")).
		Run(func(ctx context.Context, scope *entity.PermissionScope) { saved = append(saved, scope) }).
		Return(nil).Times(2)
	f.publisher.EXPECT().PublishAuditEvent(ctx, mock.MatchedBy(func(e *service.AuditEvent) bool {
		return e.Type == service.AuditPermissionsPatch
	})).Return(nil).Once()

	err := f.srv.PatchPermissions(ctx, credentialID, usecase.PermissionsInput{
		AllowedOrigins: []string{"erp.example.com"},
		PermissionScopes: []usecase.ScopeInput{
			{ModelName: "x", CanRead: boolPtr(true)},
			{ModelName: "y", CanDelete: boolPtr(true), CanReject: boolPtr(false)},
			{CanRead: boolPtr(true)},
		},
	})

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, &entity.PermissionScope{ID: scopeID, CredentialID: credentialID, ResourceType: "x", CanCreate: true, CanRead: true}, saved[0])
	assert.Equal(t, &entity.PermissionScope{CredentialID: credentialID, ResourceType: "y", CanDelete: true}, saved[1])
}

func TestPermissionService_PatchPermissions_ClearsFlagSetToFalse(t *testing.T) {
	f := newPermissionFixture(t)
	ctx := context.Background()
	credentialID := uuid.New()

	expectTx(t, f.txManager, f.factory)
	f.factory.EXPECT().NewPermissionRepository().Return(f.perms).Once()
	f.perms.EXPECT().AddOrigins(ctx, credentialID, []string{}).Return(nil).Once()
	f.perms.EXPECT().AddEndpoints(ctx, credentialID, []string{}).Return(nil).Once()
	f.perms.EXPECT().FindScope(ctx, credentialID, "x").
		Return(&entity.PermissionScope{CredentialID: credentialID, ResourceType: "x", CanCreate: true, CanRead: true}, nil).Once()
	f.perms.EXPECT().SaveScope(ctx, mock.MatchedBy(func(s *entity.PermissionScope) bool {
		return s.CanCreate && !s.CanRead
	})).Return(nil).Once()
	f.publisher.EXPECT().PublishAuditEvent(ctx, mock.Anything).Return(nil).Once()

	err := f.srv.PatchPermissions(ctx, credentialID, usecase.PermissionsInput{
		PermissionScopes: []usecase.ScopeInput{{ModelName: "x", CanRead: boolPtr(false)}},
	})

	require.NoError(t, err)
}

func TestCleanList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, cleanList([]string{" a", "", "b", "a ", "  "}))
	assert.Empty(t, cleanList(nil))
}
