package employees

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/UnknownOlympus/employee-directory/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-directory/internal/metrics"
	"github.com/UnknownOlympus/employee-directory/internal/models"
)

// EmployeeAPI is the backend that owns every employee record.
type EmployeeAPI interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, input models.EmployeeInput) error
	Update(ctx context.Context, identifier models.EmployeeID, input models.EmployeeInput) error
	Delete(ctx context.Context, identifier models.EmployeeID) error
}

// Store holds the in-memory copy of the employee list. Every mutation goes to the
// backend first and is followed by a full re-fetch; the list is never patched locally.
type Store struct {
	log     *slog.Logger
	api     EmployeeAPI
	metrics *metrics.Metrics

	mu      sync.RWMutex
	records []models.Employee
}

func NewStore(log *slog.Logger, api EmployeeAPI, metrics *metrics.Metrics) *Store {
	return &Store{log: log, api: api, metrics: metrics, records: []models.Employee{}}
}

func (s *Store) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "store"),
	)
}

// Records returns a copy of the current list.
func (s *Store) Records() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.records)
}

// Find returns the record with the given id from the current list.
func (s *Store) Find(identifier models.EmployeeID) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.ID == identifier {
			return record, true
		}
	}

	return models.Employee{}, false
}

// Refresh replaces the list with the backend's. On failure the previous list stays.
func (s *Store) Refresh(ctx context.Context) error {
	const opn = "Store.Refresh"
	log := s.initLogger(opn)

	records, err := s.api.List(ctx)
	if err != nil {
		s.metrics.Refreshes.WithLabelValues("failure").Inc()
		log.ErrorContext(ctx, "Error fetching employees", sl.Err(err))
		return fmt.Errorf("failed to fetch employees: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.metrics.Refreshes.WithLabelValues("success").Inc()
	s.metrics.Records.Set(float64(len(records)))
	s.metrics.LastSuccessfulRefresh.Set(float64(time.Now().Unix()))
	log.DebugContext(ctx, "Employee list refreshed", "count", len(records))

	return nil
}

// Create submits a new employee and re-fetches the list on success.
func (s *Store) Create(ctx context.Context, name, email, role string) error {
	const opn = "Store.Create"
	log := s.initLogger(opn)

	input := models.EmployeeInput{Name: name, Email: email, Role: role}
	if err := s.api.Create(ctx, input); err != nil {
		log.ErrorContext(ctx, "Error adding employee", "name", name, sl.Err(err))
		return fmt.Errorf("failed to add employee '%s': %w", name, err)
	}

	s.refreshAfter(ctx, log)

	return nil
}

// Update overwrites every field of the employee with the given id and re-fetches the list on success.
func (s *Store) Update(ctx context.Context, identifier models.EmployeeID, name, email, role string) error {
	const opn = "Store.Update"
	log := s.initLogger(opn)

	input := models.EmployeeInput{Name: name, Email: email, Role: role}
	if err := s.api.Update(ctx, identifier, input); err != nil {
		log.ErrorContext(ctx, "Error updating employee", "id", identifier, sl.Err(err))
		return fmt.Errorf("failed to update employee %s: %w", identifier, err)
	}

	s.refreshAfter(ctx, log)

	return nil
}

// Delete removes the employee with the given id and re-fetches the list on success.
func (s *Store) Delete(ctx context.Context, identifier models.EmployeeID) error {
	const opn = "Store.Delete"
	log := s.initLogger(opn)

	if err := s.api.Delete(ctx, identifier); err != nil {
		log.ErrorContext(ctx, "Error deleting employee", "id", identifier, sl.Err(err))
		return fmt.Errorf("failed to delete employee %s: %w", identifier, err)
	}

	s.refreshAfter(ctx, log)

	return nil
}

// refreshAfter re-fetches after a successful mutation. The mutation stands even when the
// re-fetch fails, so the failure is only logged and the list stays stale until the next fetch.
func (s *Store) refreshAfter(ctx context.Context, log *slog.Logger) {
	if err := s.Refresh(ctx); err != nil {
		log.WarnContext(ctx, "Mutation succeeded but the list could not be refreshed", sl.Err(err))
	}
}
