package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema updates. Every
// statement is idempotent so the application can run it on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}
	if err := addEnrollmentLockColumn(db); err != nil {
		return err
	}
	if err := seedRoles(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS schools (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			code VARCHAR(50) UNIQUE NOT NULL,
			address TEXT,
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS centers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			name VARCHAR(255) NOT NULL,
			code VARCHAR(50) UNIQUE NOT NULL,
			address TEXT,
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS curriculums (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			fees BIGINT NOT NULL DEFAULT 0,
			duration_months INT NOT NULL DEFAULT 0,
			classes_per_installment_weekday INT NOT NULL DEFAULT 0,
			classes_per_installment_weekend INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			center_id UUID NOT NULL REFERENCES centers(id),
			name VARCHAR(255) NOT NULL,
			code VARCHAR(50) UNIQUE NOT NULL,
			format VARCHAR(10) NOT NULL DEFAULT 'weekday',
			teacher_id UUID REFERENCES users(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_code VARCHAR(50) UNIQUE NOT NULL,
			center_id UUID NOT NULL REFERENCES centers(id),
			class_id UUID REFERENCES classes(id),
			curriculum_id UUID REFERENCES curriculums(id),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			gender VARCHAR(10),
			date_of_birth DATE,
			guardian_name VARCHAR(255) NOT NULL DEFAULT '',
			guardian_phone VARCHAR(20) NOT NULL DEFAULT '',
			guardian_email VARCHAR(255),
			address TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			class_id UUID REFERENCES classes(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			marked_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS curriculum_enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			curriculum_id UUID NOT NULL REFERENCES curriculums(id),
			original_fees BIGINT NOT NULL,
			discount_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
			discount_reason TEXT,
			discount_amount BIGINT NOT NULL DEFAULT 0,
			total_fees BIGINT NOT NULL,
			payment_plan VARCHAR(15) NOT NULL DEFAULT 'full',
			total_installments INT NOT NULL DEFAULT 1,
			installment_amount BIGINT NOT NULL,
			class_format VARCHAR(10) NOT NULL DEFAULT 'weekday',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, curriculum_id)
		)`,
		`CREATE TABLE IF NOT EXISTS payment_transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			enrollment_id UUID NOT NULL REFERENCES curriculum_enrollments(id),
			student_id UUID NOT NULL REFERENCES students(id),
			curriculum_id UUID NOT NULL REFERENCES curriculums(id),
			amount BIGINT NOT NULL CHECK (amount >= 1),
			payment_method VARCHAR(20) NOT NULL,
			payment_date DATE NOT NULL,
			transaction_reference TEXT,
			remarks TEXT,
			recorded_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS installment_reminders (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			enrollment_id UUID NOT NULL REFERENCES curriculum_enrollments(id),
			installment_number INT NOT NULL,
			present_count INT NOT NULL DEFAULT 0,
			amount_pending BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (enrollment_id, installment_number)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}
	return nil
}

// addEnrollmentLockColumn upgrades databases created before the server-side
// immutability guard existed.
func addEnrollmentLockColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'curriculum_enrollments'
				AND column_name = 'locked_at_first_payment'
			) THEN
				ALTER TABLE curriculum_enrollments ADD COLUMN locked_at_first_payment BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added locked_at_first_payment column to curriculum_enrollments';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for locked_at_first_payment column: %v", err)
		return err
	}
	return nil
}

func seedRoles(db *sql.DB) error {
	roles := []string{"admin", "center_admin", "accountant", "teacher"}
	for _, name := range roles {
		_, err := db.Exec(`INSERT INTO roles (name, is_active) VALUES ($1, true) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			log.Printf("Failed to seed role %s: %v", name, err)
			return err
		}
	}
	return nil
}
