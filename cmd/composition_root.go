package cmd

import (
	"packagetracker/internal/adapters/out/postgres"
	"packagetracker/internal/adapters/out/postgres/outboxrepo"
	"packagetracker/internal/adapters/out/sendgrid"
	"packagetracker/internal/core/application/usecases/commands"
	"packagetracker/internal/core/application/usecases/queries"
	"packagetracker/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB) (CompositionRoot, error) {
	notifier, err := sendgrid.NewClient(sendgrid.Config{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
	}, nil
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterPackageCommandHandler() commands.RegisterPackageCommandHandler {
	return commands.NewRegisterPackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateEditPackageDetailsCommandHandler() commands.EditPackageDetailsCommandHandler {
	return commands.NewEditPackageDetailsCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateAddPackageUpdateCommandHandler() commands.AddPackageUpdateCommandHandler {
	return commands.NewAddPackageUpdateCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateEditPackageUpdateCommandHandler() commands.EditPackageUpdateCommandHandler {
	return commands.NewEditPackageUpdateCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateRemovePackageCommandHandler() commands.RemovePackageCommandHandler {
	return commands.NewRemovePackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateDispatchNoticesCommandHandler() commands.DispatchNoticesCommandHandler {
	// The relay runs outside any request transaction, plain connection.
	outbox := outboxrepo.NewGormNotificationOutbox(c.gormDB)
	return commands.NewDispatchNoticesCommandHandler(outbox, c.notifier)
}

func (c *CompositionRoot) CreateGetAllPackagesQueryHandler() queries.GetAllPackagesQueryHandler {
	return queries.NewGetAllPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageByCodeQueryHandler() queries.GetPackageByCodeQueryHandler {
	return queries.NewGetPackageByCodeQueryHandler(c.gormDB)
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}
