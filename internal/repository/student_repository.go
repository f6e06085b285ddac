package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/campusdesk/complaint-api/internal/models"
)

// StudentRepository reads student accounts. Accounts are seed data and are
// never mutated through the API.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByStudentID fetches an account by its external identifier. Returns
// sql.ErrNoRows when the identifier is unknown.
func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	const query = `SELECT id, student_id, name, email, password FROM students WHERE student_id = ?`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, studentID); err != nil {
		return nil, err
	}
	return &student, nil
}
