package cmd

import (
	"fmt"

	"opsboard/internal/adapters/out/postgres/orderrepo"
	"opsboard/internal/adapters/out/postgres/orgrepo"
	"opsboard/internal/adapters/out/postgres/pickuprepo"
	"opsboard/internal/adapters/out/postgres/returnrepo"
	"opsboard/internal/adapters/out/postgres/rosterrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects to Postgres and migrates the schema.
func OpenDatabase(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = db.AutoMigrate(
		&orgrepo.OrganizationDTO{},
		&orderrepo.OrderDTO{},
		&pickuprepo.PickupDTO{},
		&returnrepo.ReturnDTO{},
		&rosterrepo.DriverDTO{},
		&rosterrepo.DesignerDTO{},
		&rosterrepo.SourceDTO{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
