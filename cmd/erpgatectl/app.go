package main

import (
	"context"

	"erpgate/config"
	"erpgate/internal/domain/lifecycle"
	"erpgate/internal/errors"
	"erpgate/internal/infra/auth"
	logs "erpgate/internal/infra/log"
	"erpgate/internal/infra/persistence/postgres"
	"erpgate/internal/infra/pubsub"
	"erpgate/internal/usecase"
	"erpgate/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// adminDeps is what the admin commands operate on.
type adminDeps struct {
	DB           *gorm.DB
	CredentialUC usecase.CredentialUsecase
}

// appRunner starts the dependencies, hands them to fn and stops them again.
type appRunner func(ctx context.Context, fn func(ctx context.Context, deps adminDeps) error) error

func runWithApp(ctx context.Context, fn func(ctx context.Context, deps adminDeps) error) error {
	var deps adminDeps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			impl.NewCredentialService,
		),
		fx.Populate(&deps.DB, &deps.CredentialUC),
	)

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start dependencies")
	}

	runErr := fn(ctx, deps)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "stop dependencies")
	}

	return runErr
}
