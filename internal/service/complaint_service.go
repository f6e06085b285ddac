package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusdesk/complaint-api/internal/classifier"
	"github.com/campusdesk/complaint-api/internal/models"
	appErrors "github.com/campusdesk/complaint-api/pkg/errors"
	"github.com/campusdesk/complaint-api/pkg/export"
)

type complaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	ListAll(ctx context.Context) ([]models.Complaint, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Complaint, error)
	FindByID(ctx context.Context, id int64) (*models.Complaint, error)
	MarkResolved(ctx context.Context, id int64) (bool, error)
}

// SubmitComplaintRequest is the complaint intake payload. ComplaintType is
// optional; when present it is trusted verbatim as the category and only
// the sentiment classification runs.
type SubmitComplaintRequest struct {
	ComplaintText string `json:"complaint_text" validate:"required"`
	StudentID     string `json:"student_id" validate:"required"`
	StudentName   string `json:"student_name"`
	ComplaintType string `json:"complaint_type"`
}

// SubmitComplaintResponse confirms intake with the resolved labels.
type SubmitComplaintResponse struct {
	ID        int64            `json:"id"`
	Category  models.Category  `json:"category"`
	Sentiment models.Sentiment `json:"sentiment"`
	Status    string           `json:"status"`
}

// ResolveComplaintResponse confirms the lifecycle transition.
type ResolveComplaintResponse struct {
	Message string `json:"message"`
}

const submittedStatus = "Complaint Submitted Successfully"

// ComplaintService owns the complaint lifecycle: intake with classification,
// listing, the pending-to-resolved transition, and tabular exports.
type ComplaintService struct {
	repo      complaintRepository
	generator classifier.TextGenerator
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewComplaintService constructs a ComplaintService.
func NewComplaintService(repo complaintRepository, generator classifier.TextGenerator, validate *validator.Validate, logger *zap.Logger) *ComplaintService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplaintService{
		repo:      repo,
		generator: generator,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
		logger:    logger,
	}
}

// Submit validates the payload, resolves category and sentiment, and
// persists the record with status pending.
func (s *ComplaintService) Submit(ctx context.Context, req SubmitComplaintRequest) (*SubmitComplaintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Missing complaint text or student ID")
	}

	studentName := req.StudentName
	if studentName == "" {
		studentName = "Anonymous"
	}

	category, err := s.resolveCategory(ctx, req)
	if err != nil {
		return nil, err
	}

	sentimentReply, err := s.generator.Generate(ctx, classifier.SentimentPrompt(req.ComplaintText))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	sentiment := models.NormalizeSentiment(sentimentReply)

	complaint := &models.Complaint{
		StudentID:     req.StudentID,
		StudentName:   studentName,
		ComplaintText: req.ComplaintText,
		Category:      category,
		Sentiment:     sentiment,
		Status:        models.StatusPending,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save complaint")
	}

	s.logger.Info("complaint submitted",
		zap.Int64("id", complaint.ID),
		zap.String("student_id", complaint.StudentID),
		zap.String("category", string(category)),
		zap.String("sentiment", string(sentiment)),
	)

	return &SubmitComplaintResponse{
		ID:        complaint.ID,
		Category:  category,
		Sentiment: sentiment,
		Status:    submittedStatus,
	}, nil
}

// resolveCategory trusts an explicit complaint_type verbatim; otherwise it
// asks the model and coerces the reply into the allow-list.
func (s *ComplaintService) resolveCategory(ctx context.Context, req SubmitComplaintRequest) (models.Category, error) {
	if req.ComplaintType != "" {
		return models.Category(req.ComplaintType), nil
	}
	reply, err := s.generator.Generate(ctx, classifier.CategoryPrompt(req.ComplaintText))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	return models.NormalizeCategory(reply), nil
}

// ListAll returns every complaint as admin summaries, newest first.
func (s *ComplaintService) ListAll(ctx context.Context) ([]models.AdminComplaintView, error) {
	complaints, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list complaints")
	}
	views := make([]models.AdminComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, c.AdminView())
	}
	return views, nil
}

// ListForStudent returns one student's complaints, newest first.
func (s *ComplaintService) ListForStudent(ctx context.Context, studentID string) ([]models.StudentComplaintView, error) {
	complaints, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list complaints")
	}
	views := make([]models.StudentComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, c.StudentView())
	}
	return views, nil
}

// Resolve performs the pending-to-resolved transition. Resolving an already
// resolved complaint succeeds again without touching the row; an unknown
// identifier is reported as not found.
func (s *ComplaintService) Resolve(ctx context.Context, id int64) (*ResolveComplaintResponse, error) {
	changed, err := s.repo.MarkResolved(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve complaint")
	}
	if changed {
		return &ResolveComplaintResponse{Message: "Complaint resolved successfully"}, nil
	}

	complaint, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load complaint")
	}
	if complaint.Status == models.StatusResolved {
		return &ResolveComplaintResponse{Message: "Complaint already resolved"}, nil
	}
	// MarkResolved raced with another writer; treat as transient.
	return nil, appErrors.Clone(appErrors.ErrInternal, "failed to resolve complaint")
}

// Export renders the full complaint table in the requested format and
// returns the file name, content type and bytes.
func (s *ComplaintService) Export(ctx context.Context, format string) (string, string, []byte, error) {
	complaints, err := s.repo.ListAll(ctx)
	if err != nil {
		return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list complaints")
	}

	dataset := export.Dataset{
		Headers: []string{"ID", "Student", "Complaint", "Category", "Sentiment", "Status", "Submitted"},
		Rows:    make([]map[string]string, 0, len(complaints)),
	}
	for _, c := range complaints {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":        fmt.Sprintf("%d", c.ID),
			"Student":   c.StudentName,
			"Complaint": c.ComplaintText,
			"Category":  string(c.Category),
			"Sentiment": string(c.Sentiment),
			"Status":    string(c.Status),
			"Submitted": c.Timestamp.Format(time.RFC3339),
		})
	}

	stamp := time.Now().UTC().Format("20060102-150405")
	switch format {
	case "csv", "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return fmt.Sprintf("complaints-%s.csv", stamp), "text/csv", data, nil
	case "pdf":
		data, err := s.pdf.Render(dataset, "Complaint Report")
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return fmt.Sprintf("complaints-%s.pdf", stamp), "application/pdf", data, nil
	default:
		return "", "", nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
