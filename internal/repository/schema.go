package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS students (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    student_id TEXT UNIQUE NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS complaints (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    student_id TEXT NOT NULL,
    student_name TEXT NOT NULL,
    complaint_text TEXT NOT NULL,
    category TEXT NOT NULL,
    sentiment TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (student_id) REFERENCES students (student_id)
);
`

// demo accounts shipped with the portal; the shared password is intentional
const seedStudents = `
INSERT OR IGNORE INTO students (student_id, name, email, password) VALUES
    ('STU001', 'John Doe', 'john@college.edu', 'student123'),
    ('STU002', 'Jane Smith', 'jane@college.edu', 'student123'),
    ('STU003', 'Mike Johnson', 'mike@college.edu', 'student123');
`

// EnsureSchema creates the two tables on first access and seeds the demo
// student accounts. Safe to call on every startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, seedStudents); err != nil {
		return fmt.Errorf("seed students: %w", err)
	}
	return nil
}
