package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campusdesk/complaint-api/internal/models"
)

// ComplaintRepository manages persistence for complaint records.
type ComplaintRepository struct {
	db *sqlx.DB
}

// NewComplaintRepository constructs a ComplaintRepository.
func NewComplaintRepository(db *sqlx.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create inserts a new complaint and assigns its identifier.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusPending
	}
	if complaint.Timestamp.IsZero() {
		complaint.Timestamp = time.Now().UTC()
	}
	const query = `INSERT INTO complaints (student_id, student_name, complaint_text, category, sentiment, status, timestamp)
        VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		complaint.StudentID,
		complaint.StudentName,
		complaint.ComplaintText,
		complaint.Category,
		complaint.Sentiment,
		complaint.Status,
		complaint.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create complaint: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read complaint id: %w", err)
	}
	complaint.ID = id
	return nil
}

// ListAll returns every complaint, newest first.
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]models.Complaint, error) {
	const query = `SELECT id, student_id, student_name, complaint_text, category, sentiment, status, timestamp
        FROM complaints ORDER BY timestamp DESC, id DESC`
	var complaints []models.Complaint
	if err := r.db.SelectContext(ctx, &complaints, query); err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// ListByStudent returns the complaints of one student, newest first.
func (r *ComplaintRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Complaint, error) {
	const query = `SELECT id, student_id, student_name, complaint_text, category, sentiment, status, timestamp
        FROM complaints WHERE student_id = ? ORDER BY timestamp DESC, id DESC`
	var complaints []models.Complaint
	if err := r.db.SelectContext(ctx, &complaints, query, studentID); err != nil {
		return nil, fmt.Errorf("list student complaints: %w", err)
	}
	return complaints, nil
}

// FindByID fetches a single complaint. Returns sql.ErrNoRows when absent.
func (r *ComplaintRepository) FindByID(ctx context.Context, id int64) (*models.Complaint, error) {
	const query = `SELECT id, student_id, student_name, complaint_text, category, sentiment, status, timestamp
        FROM complaints WHERE id = ?`
	var complaint models.Complaint
	if err := r.db.GetContext(ctx, &complaint, query, id); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// MarkResolved performs the pending-to-resolved transition. It reports
// whether a row actually changed, so callers can tell a fresh transition
// apart from an already-resolved or missing record.
func (r *ComplaintRepository) MarkResolved(ctx context.Context, id int64) (bool, error) {
	const query = `UPDATE complaints SET status = ? WHERE id = ? AND status = ?`
	result, err := r.db.ExecContext(ctx, query, models.StatusResolved, id, models.StatusPending)
	if err != nil {
		return false, fmt.Errorf("resolve complaint: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("resolve complaint: %w", err)
	}
	return affected > 0, nil
}
