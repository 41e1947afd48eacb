package migrate

import (
	"context"

	"github.com/joshua-takyi/cinema/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateChecks    bool // CHECK constraints on status and counts
	CreateIndexes   bool
	CreateFKsViaSQL bool // FK with ON DELETE CASCADE on top of the gorm constraint
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateChecks:    true,
		CreateIndexes:   true,
		CreateFKsViaSQL: true,
	}
}

type step struct {
	name string
	sql  string
}

func MigrateCinemaDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	db = db.WithContext(ctx)
	log.Info("starting cinema database migration")

	if err := db.AutoMigrate(&models.User{}, &models.Show{}, &models.Reservation{}); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}
	log.Info("tables users, shows, reservations ready")

	if opt.CreateChecks {
		if err := run(db, log, []step{
			{"chk_reservations_status_allowed", `
ALTER TABLE reservations
  DROP CONSTRAINT IF EXISTS chk_reservations_status_allowed;
ALTER TABLE reservations
  ADD CONSTRAINT chk_reservations_status_allowed
  CHECK (status IN ('RESERVED','CONFIRMED','CANCELLED'));
`},
			{"chk_reservations_seats_positive", `
ALTER TABLE reservations
  DROP CONSTRAINT IF EXISTS chk_reservations_seats_positive;
ALTER TABLE reservations
  ADD CONSTRAINT chk_reservations_seats_positive
  CHECK (seats >= 1);
`},
		}); err != nil {
			return err
		}
	}

	if opt.CreateIndexes {
		if err := run(db, log, []step{
			{"ix_reservations_show_id", `
CREATE INDEX IF NOT EXISTS ix_reservations_show_id_id
ON reservations (show_id, id);
`},
		}); err != nil {
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		if err := run(db, log, []step{
			{"fk_reservations_show", `
ALTER TABLE reservations
  DROP CONSTRAINT IF EXISTS fk_reservations_show,
  ADD CONSTRAINT fk_reservations_show
    FOREIGN KEY (show_id) REFERENCES shows(id) ON DELETE CASCADE;
`},
		}); err != nil {
			return err
		}
	}

	log.Info("cinema database migration finished")
	return nil
}

func run(db *gorm.DB, log *zap.Logger, steps []step) error {
	for _, s := range steps {
		if err := db.Exec(s.sql).Error; err != nil {
			log.Error("migration step failed", zap.String("step", s.name), zap.Error(err))
			return err
		}
		log.Debug("migration step applied", zap.String("step", s.name))
	}
	return nil
}
