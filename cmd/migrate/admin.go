package main

import (
	"context"
	"fmt"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// admin wraps the Spanner admin clients used by a migrate run.
type admin struct {
	config    Config
	logger    *zap.Logger
	instances *instance.InstanceAdminClient
	databases *database.DatabaseAdminClient
}

func newAdmin(ctx context.Context, config Config, logger *zap.Logger) (*admin, error) {
	instances, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create instance admin client: %w", err)
	}
	databases, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		instances.Close()
		return nil, fmt.Errorf("failed to create database admin client: %w", err)
	}
	return &admin{config: config, logger: logger, instances: instances, databases: databases}, nil
}

func (a *admin) Close() {
	a.databases.Close()
	a.instances.Close()
}

// ensureInstance creates the instance on the emulator. Against real Spanner
// the instance must already exist.
func (a *admin) ensureInstance(ctx context.Context) error {
	name := a.config.InstancePath()
	_, err := a.instances.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: name})
	switch {
	case err == nil:
		return nil
	case status.Code(err) != codes.NotFound:
		return fmt.Errorf("failed to check instance %s: %w", name, err)
	case !a.config.Emulator:
		return fmt.Errorf("instance %s does not exist", name)
	}

	a.logger.Info("creating emulator instance", zap.String("instance", name))
	op, err := a.instances.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + a.config.ProjectID,
		InstanceId: a.config.InstanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", a.config.ProjectID),
			DisplayName: "EcoFinds development",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance creation: %w", err)
	}
	return nil
}

func (a *admin) ensureDatabase(ctx context.Context) error {
	name := a.config.DatabasePath()
	_, err := a.databases.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: name})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check database %s: %w", name, err)
	}

	a.logger.Info("creating database", zap.String("database", name))
	op, err := a.databases.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          a.config.InstancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", a.config.DatabaseID),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

// updateDDL applies statements as one schema change.
func (a *admin) updateDDL(ctx context.Context, statements []string) error {
	op, err := a.databases.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   a.config.DatabasePath(),
		Statements: statements,
	})
	if err != nil {
		return err
	}
	return op.Wait(ctx)
}
