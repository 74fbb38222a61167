package employees

import (
	"log/slog"

	"github.com/mesh-intelligence/staffbook/internal/lib/logger/sl"
	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// Service applies the validation rules and executes store operations.
// It has no knowledge of any user interface; confirmation gates and
// reporting belong to the caller.
type Service struct {
	repo types.Repository
	log  *slog.Logger
}

// NewService creates a Service over the given repository. A nil logger
// falls back to slog.Default.
func NewService(repo types.Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// Add validates the form input and inserts a new record. Validation
// failures wrap ErrInvalidInput and never reach the store. A taken ID
// surfaces as ErrDuplicateID with no row modified. On store errors the
// returned Employee is the validated record, so callers can name the
// attempted mutation in their reports.
func (s *Service) Add(in FormInput) (types.Employee, error) {
	e, err := ParseRecord(in)
	if err != nil {
		return types.Employee{}, err
	}

	if err := s.repo.Insert(e); err != nil {
		s.log.Error("add employee failed", slog.Int("id", e.ID), sl.Err(err))
		return e, err
	}

	s.log.Info("employee added", slog.Int("id", e.ID))
	return e, nil
}

// Update validates the form input and overwrites Name and Salary of the
// record with the given ID. The ID is never altered. A missing record
// surfaces as ErrNotFound with no write.
func (s *Service) Update(in FormInput) (types.Employee, error) {
	e, err := ParseRecord(in)
	if err != nil {
		return types.Employee{}, err
	}

	if err := s.repo.Update(e); err != nil {
		s.log.Error("update employee failed", slog.Int("id", e.ID), sl.Err(err))
		return e, err
	}

	s.log.Info("employee updated", slog.Int("id", e.ID))
	return e, nil
}

// Delete validates the ID field alone and removes the matching record.
// Returns the parsed ID so callers can phrase confirmation prompts and
// reports. A missing record surfaces as ErrNotFound.
func (s *Service) Delete(idText string) (int, error) {
	id, err := ParseID(idText)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Delete(id); err != nil {
		s.log.Error("delete employee failed", slog.Int("id", id), sl.Err(err))
		return id, err
	}

	s.log.Info("employee deleted", slog.Int("id", id))
	return id, nil
}

// Get validates the ID field and retrieves the matching record.
func (s *Service) Get(idText string) (types.Employee, error) {
	id, err := ParseID(idText)
	if err != nil {
		return types.Employee{}, err
	}
	return s.repo.Get(id)
}

// Listing returns the full, ID-ordered projection of all records.
func (s *Service) Listing() ([]types.Employee, error) {
	return s.repo.ListAll()
}
