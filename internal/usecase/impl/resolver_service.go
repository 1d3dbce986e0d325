package impl

import (
	"context"
	"log/slog"
	"net/http"

	"erpgate/config"
	deliverycontext "erpgate/internal/delivery/context"
	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/repository"
	"erpgate/internal/domain/service"
	"erpgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var baseReadFields = []string{"id", "name"}

// resolverService implements the ResolverUsecase interface.
type resolverService struct {
	txManager  repository.TransactionManager
	backend    service.RemoteBackend
	publisher  service.EventPublisher
	readFields map[string][]string
	logger     *slog.Logger
}

// ResolverServiceParams holds dependencies for ResolverService, injected by Fx.
type ResolverServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Backend   service.RemoteBackend
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewResolverService is the constructor for resolverService.
func NewResolverService(params ResolverServiceParams) usecase.ResolverUsecase {
	srv := &resolverService{
		txManager: params.TxManager,
		backend:   params.Backend,
		publisher: params.Publisher,
		logger:    params.Logger,
	}

	if params.Config != nil && params.Config.Resolver != nil {
		srv.readFields = params.Config.Resolver.ReadFields
	}

	return srv
}

func (srv *resolverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve checks origin, resource type, action and scope, in that order, and only then
// forwards the operation to the remote backend under the credential's session.
func (srv *resolverService) Resolve(ctx context.Context, input usecase.ResolveInput) (*usecase.ResolveOutput, error) {
	credential := input.Credential
	if credential == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var op entity.Operation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permissionRepo := repoFactory.NewPermissionRepository()

		// 1. Host
		origins, err := permissionRepo.FindOrigins(ctx, credential.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find allowed origins")
		}
		if !entity.OriginAllowed(input.Host, origins) {
			return errors.WithStack(domainerrors.ErrForbiddenHost)
		}

		// 2. Resource type
		if input.ResourceType == "" {
			return errors.WithStack(domainerrors.ErrUnknownModel)
		}

		// 3. Action
		parsed, ok := entity.ParseOperation(input.Action)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnsupportedAction.WithDetails(input.Action))
		}
		op = parsed

		// 4. Scope
		scope, err := permissionRepo.FindScope(ctx, credential.ID, input.ResourceType)
		if err != nil && !errors.Is(err, repository.ErrScopeNotFound) {
			return errors.Wrap(err, "failed to find permission scope")
		}
		if !scope.Allows(op) {
			return errors.WithStack(domainerrors.ErrPermissionDenied)
		}

		return nil
	})
	if err != nil {
		srv.denied(ctx, input, err)

		return nil, err
	}

	args, err := srv.buildArgs(op, input)
	if err != nil {
		return nil, err
	}

	call := service.RemoteCall{
		Model:  input.ResourceType,
		Method: op.RemoteMethod(),
		Args:   args,
		Kwargs: map[string]any{},
	}

	result, err := srv.backend.Call(ctx, credential.RemoteSessionID, call)
	if err != nil {
		srv.log(ctx).Warn("Remote call failed",
			slog.String("model", call.Model),
			slog.String("method", call.Method),
			slog.Any("error", err),
		)

		return nil, err
	}

	event := &service.AuditEvent{
		Type:         service.AuditResolverDispatched,
		CredentialID: credential.ID.String(),
		RemoteUserID: credential.RemoteUserID,
		ResourceType: input.ResourceType,
		Action:       op.String(),
	}
	if input.ResourceID != nil {
		event.ResourceID = *input.ResourceID
	}
	publishAudit(ctx, srv.publisher, srv.log(ctx), event)

	srv.log(ctx).Info("Resolver call dispatched",
		slog.String("credential_id", credential.ID.String()),
		slog.String("channel", input.Channel),
		slog.String("model", call.Model),
		slog.String("method", call.Method),
	)

	return &usecase.ResolveOutput{
		RemoteMethod: call.Method,
		Result:       result,
	}, nil
}

func (srv *resolverService) buildArgs(op entity.Operation, input usecase.ResolveInput) ([]any, error) {
	if op.RequiresResourceID() && input.ResourceID == nil {
		return nil, errors.WithStack(domainerrors.ErrMissingResourceID)
	}

	body := input.Body
	if body == nil {
		body = map[string]any{}
	}

	switch op {
	case entity.OperationCreate:
		return []any{[]any{body}}, nil
	case entity.OperationRead:
		domain := []any{}
		if input.ResourceID != nil {
			domain = []any{[]any{"id", "=", *input.ResourceID}}
		}

		fields := make([]string, 0, len(baseReadFields)+len(srv.readFields[input.ResourceType]))
		fields = append(fields, baseReadFields...)
		fields = append(fields, srv.readFields[input.ResourceType]...)

		return []any{domain, fields}, nil
	case entity.OperationUpdate:
		return []any{[]any{*input.ResourceID}, body}, nil
	case entity.OperationDelete, entity.OperationApprove, entity.OperationReject:
		return []any{[]any{*input.ResourceID}}, nil
	default:
		return nil, errors.WithStack(domainerrors.ErrUnsupportedAction)
	}
}

func (srv *resolverService) denied(ctx context.Context, input usecase.ResolveInput, err error) {
	appErr, ok := findAppError(err)
	if !ok || appErr.HTTPCode() >= http.StatusInternalServerError {
		return
	}

	srv.log(ctx).Info("Resolver call denied",
		slog.String("credential_id", input.Credential.ID.String()),
		slog.String("model", input.ResourceType),
		slog.String("action", input.Action),
		slog.String("code", appErr.ErrorCode()),
	)

	publishAudit(ctx, srv.publisher, srv.log(ctx), &service.AuditEvent{
		Type:         service.AuditResolverDenied,
		CredentialID: input.Credential.ID.String(),
		RemoteUserID: input.Credential.RemoteUserID,
		ResourceType: input.ResourceType,
		Action:       input.Action,
		Reason:       appErr.ErrorCode(),
	})
}

func findAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
