package database

import (
	"gorm.io/gorm"

	"quickstay/internal/repository"
)

// Migrate applies the schema. On PostgreSQL it also installs the range
// exclusion constraint that makes a booking insert fail atomically when it
// would overlap an existing booking on the same room. SQLite has no range
// exclusion; there the per-room lock in the booking service is the only
// guard, which is sufficient for a single process.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_double_booking') THEN
		ALTER TABLE bookings
			ADD CONSTRAINT idx_no_double_booking
			EXCLUDE USING gist (room_id WITH =, tstzrange(check_in, check_out, '[)') WITH &&);
	END IF;
END $$;
`).Error
}
