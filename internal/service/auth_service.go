package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusdesk/complaint-api/internal/models"
	"github.com/campusdesk/complaint-api/pkg/config"
	appErrors "github.com/campusdesk/complaint-api/pkg/errors"
)

type studentAccountRepository interface {
	FindByStudentID(ctx context.Context, studentID string) (*models.Student, error)
}

// AuthService verifies student and admin credentials. Students live in the
// store; the admin pair is a configured constant. Comparisons are plain
// string equality on purpose, this is a demo-grade portal.
type AuthService struct {
	repo      studentAccountRepository
	admin     config.AdminConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(repo studentAccountRepository, admin config.AdminConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, admin: admin, validator: validate, logger: logger}
}

// StudentLogin authenticates a student and returns the public account info.
func (s *AuthService) StudentLogin(ctx context.Context, req models.StudentLoginRequest) (*models.StudentInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
	}

	student, err := s.repo.FindByStudentID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}

	if student.Password != req.Password {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
	}

	info := student.Info()
	return &info, nil
}

// AdminLogin checks the fixed admin credential pair.
func (s *AuthService) AdminLogin(ctx context.Context, req models.AdminLoginRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
	}
	if req.Username != s.admin.Username || req.Password != s.admin.Password {
		s.logger.Debug("admin login rejected", zap.String("username", req.Username))
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
	}
	return nil
}
