package employees

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/employee-directory/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-directory/internal/models"
	"github.com/UnknownOlympus/employee-directory/internal/view"
)

// Options configure a Directory.
type Options struct {
	View view.Options
	// KeepInputOnFailure keeps the form values when create or update fails. By default they
	// are cleared regardless of the outcome, which discards what the user typed.
	KeepInputOnFailure bool
}

// Screen is the full state of the directory page.
type Screen struct {
	view.Screen

	Form        view.Form `json:"form"`
	SubmitLabel string    `json:"submitLabel"`
}

// Directory binds the store, the list projection and the add/edit form together.
// Backend failures are logged and never stop the directory from serving.
type Directory struct {
	log   *slog.Logger
	store *Store
	opts  Options

	mu        sync.Mutex
	projector *view.Projector
	form      view.Form
}

func NewDirectory(log *slog.Logger, store *Store, opts Options) *Directory {
	return &Directory{
		log:       log,
		store:     store,
		opts:      opts,
		projector: view.NewProjector(opts.View),
	}
}

func (d *Directory) initLogger(opn string) *slog.Logger {
	return d.log.With(
		slog.String("op", opn),
		slog.String("division", "directory"),
	)
}

// Start loads the list once and then, when interval is positive, re-fetches it on every
// tick until ctx is done. A failed load is logged and the directory keeps serving.
func (d *Directory) Start(ctx context.Context, interval time.Duration) error {
	const opn = "Directory.Start"
	log := d.initLogger(opn)

	log.InfoContext(ctx, "Loading employee list")
	if err := d.store.Refresh(ctx); err != nil {
		log.WarnContext(ctx, "Initial load failed, the list stays empty until the next fetch", sl.Err(err))
	}

	if interval <= 0 {
		<-ctx.Done()
		return nil
	}

	log.InfoContext(ctx, "Starting periodic refresh", "interval", interval.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.DebugContext(ctx, "Periodic refresh triggered.")
			if err := d.store.Refresh(ctx); err != nil {
				log.WarnContext(ctx, "Periodic refresh failed", sl.Err(err))
			}
		case <-ctx.Done():
			log.InfoContext(ctx, "Directory shutting down.")
			return nil
		}
	}
}

// Refresh re-fetches the list on demand.
func (d *Directory) Refresh(ctx context.Context) error {
	return d.store.Refresh(ctx)
}

// Search replaces the active query.
func (d *Directory) Search(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.projector.SetQuery(query)
}

// GoTo jumps to the given page.
func (d *Directory) GoTo(page int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.projector.SetPage(page)
}

func (d *Directory) Prev() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.projector.Prev()
}

func (d *Directory) Next() {
	records := d.store.Records()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.projector.Next(records)
}

// Edit loads the employee into the form. Unknown ids are ignored.
func (d *Directory) Edit(identifier models.EmployeeID) bool {
	employee, ok := d.store.Find(identifier)
	if !ok {
		d.initLogger("Directory.Edit").Debug("Employee to edit not found", "id", identifier)
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.form.Edit(employee)

	return true
}

// SetForm records the values the user typed.
func (d *Directory) SetForm(input models.EmployeeInput) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.form.Set(input)
}

// CancelEdit empties the form and leaves update mode.
func (d *Directory) CancelEdit() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.form.Clear()
}

// Submit adds a new employee, or updates the one being edited.
func (d *Directory) Submit(ctx context.Context) error {
	const opn = "Directory.Submit"
	log := d.initLogger(opn)

	d.mu.Lock()
	form := d.form
	d.mu.Unlock()

	var err error
	if form.Mode() == view.ModeUpdate {
		err = d.store.Update(ctx, form.EditingID, form.Name, form.Email, form.Role)
	} else {
		err = d.store.Create(ctx, form.Name, form.Email, form.Role)
	}

	if err != nil && d.opts.KeepInputOnFailure {
		log.InfoContext(ctx, "Submit failed, keeping form input", "mode", form.Mode())
		return fmt.Errorf("failed to submit employee form: %w", err)
	}

	d.mu.Lock()
	// A concurrent edit started after the snapshot wins over the clear.
	if d.form == form {
		d.form.Clear()
	}
	d.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to submit employee form: %w", err)
	}

	return nil
}

// Delete removes the employee with the given id.
func (d *Directory) Delete(ctx context.Context, identifier models.EmployeeID) error {
	return d.store.Delete(ctx, identifier)
}

// Screen projects the current list and returns it along with the form.
func (d *Directory) Screen() Screen {
	records := d.store.Records()

	d.mu.Lock()
	defer d.mu.Unlock()

	return Screen{
		Screen:      d.projector.Project(records),
		Form:        d.form,
		SubmitLabel: d.form.SubmitLabel(),
	}
}
