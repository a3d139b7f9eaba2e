// Package form holds the collection create/edit form state and its submit contract.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/collections-admin-api/internal/models"
	"github.com/collections-admin-api/internal/notify"
	"github.com/collections-admin-api/internal/validation"
)

// ErrSubmitPending is returned when Submit is called while a previous
// submission on the same form is still in flight.
var ErrSubmitPending = errors.New("collection submission already in progress")

// CollectionRepository persists a submitted collection. When isEditing is
// true c.ID identifies the record to update; otherwise a new record is
// created and c is filled with the stored id and timestamps.
type CollectionRepository interface {
	CreateOrUpdate(ctx context.Context, c *models.Collection, isEditing bool) error
}

// PersistenceError wraps a repository failure with the attempted operation
type PersistenceError struct {
	Op  string // "create" or "update"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s collection: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Outcome describes a submission that reached the repository
type Outcome struct {
	Collection   *models.Collection
	Notification models.Notification
	Created      bool
}

// Option configures a CollectionForm
type Option func(*CollectionForm)

// WithOnClose registers the callback used to ask the presentation layer to close the form
func WithOnClose(fn func()) Option {
	return func(f *CollectionForm) {
		f.onClose = fn
	}
}

// CollectionForm holds the editable fields of one collection.
// A form instance is driven by a single caller; only the pending flag is
// safe to read concurrently.
type CollectionForm struct {
	repo    CollectionRepository
	sink    notify.Sink
	onClose func()

	editing *models.Collection
	values  models.CollectionInput
	pending atomic.Bool
}

// NewCollectionForm creates a form in create mode with default values
func NewCollectionForm(repo CollectionRepository, sink notify.Sink, opts ...Option) *CollectionForm {
	f := &CollectionForm{
		repo: repo,
		sink: sink,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.reset()
	return f
}

// Initialize starts the form from a clean state. A non-nil existing record
// switches to edit mode and copies its fields; nil switches to create mode
// with defaults. Call it whenever the edit target or visibility changes.
func (f *CollectionForm) Initialize(existing *models.Collection) {
	if existing == nil {
		f.editing = nil
		f.reset()
		return
	}

	target := *existing
	target.Genre = copyGenre(existing.Genre)
	f.editing = &target
	f.values = models.CollectionInput{
		Name:   existing.Name,
		Author: existing.Author,
		Type:   existing.Type,
		Genre:  copyGenre(existing.Genre),
	}
}

// Close discards the field state and asks the presentation layer to close
func (f *CollectionForm) Close() {
	f.reset()
	f.close()
}

// SetName sets the collection name field
func (f *CollectionForm) SetName(name string) { f.values.Name = name }

// SetAuthor sets the author field
func (f *CollectionForm) SetAuthor(author string) { f.values.Author = author }

// SetType sets the content type field
func (f *CollectionForm) SetType(t models.ContentType) { f.values.Type = t }

// SetGenre replaces the selected genres
func (f *CollectionForm) SetGenre(genre []string) { f.values.Genre = copyGenre(genre) }

// Apply replaces every field at once
func (f *CollectionForm) Apply(in models.CollectionInput) {
	f.values = in
	f.values.Genre = copyGenre(in.Genre)
}

// Editing reports whether the form edits an existing collection
func (f *CollectionForm) Editing() bool { return f.editing != nil }

// Pending reports whether a submission is in flight
func (f *CollectionForm) Pending() bool { return f.pending.Load() }

// Values returns a copy of the current field values
func (f *CollectionForm) Values() models.CollectionInput {
	v := f.values
	v.Genre = copyGenre(f.values.Genre)
	return v
}

// Title is the heading shown above the form
func (f *CollectionForm) Title() string {
	if f.Editing() {
		return "Edit Collection"
	}
	return "Create New Collection"
}

// SubmitLabel is the caption of the submit trigger
func (f *CollectionForm) SubmitLabel() string {
	if f.Editing() {
		return "Update Collection"
	}
	return "Create Collection"
}

// Validate checks every field independently
func (f *CollectionForm) Validate() validation.Errors {
	return validation.ValidateCollection(f.values)
}

// Submit validates the form and, when valid, hands the current values to
// the repository. Invalid forms return validation.Errors without calling
// the repository or emitting a notification. Every submission that reaches
// the repository emits exactly one notification. On success the fields are
// reset and the form asks to be closed; on failure they are kept for retry
// and a *PersistenceError is returned.
func (f *CollectionForm) Submit(ctx context.Context) (*Outcome, error) {
	if errs := f.Validate(); !errs.Valid() {
		return nil, errs
	}

	if !f.pending.CompareAndSwap(false, true) {
		return nil, ErrSubmitPending
	}
	defer f.pending.Store(false)

	isEditing := f.Editing()
	c := &models.Collection{
		Name:   f.values.Name,
		Author: f.values.Author,
		Type:   f.values.Type,
		Genre:  copyGenre(f.values.Genre),
	}
	if isEditing {
		c.ID = f.editing.ID
		c.CreatedAt = f.editing.CreatedAt
	}

	if err := f.repo.CreateOrUpdate(ctx, c, isEditing); err != nil {
		op := "create"
		if isEditing {
			op = "update"
		}
		n := models.Notification{
			Title:    "Error",
			Message:  fmt.Sprintf("Failed to %s collection: %s", op, err.Error()),
			Category: models.NotificationError,
		}
		f.show(n)
		return &Outcome{Notification: n}, &PersistenceError{Op: op, Err: err}
	}

	done := "created"
	if isEditing {
		done = "updated"
	}
	n := models.Notification{
		Title:    "Success",
		Message:  fmt.Sprintf("Collection %s successfully", done),
		Category: models.NotificationSuccess,
	}

	f.reset()
	f.close()
	f.show(n)

	return &Outcome{Collection: c, Notification: n, Created: !isEditing}, nil
}

func (f *CollectionForm) reset() {
	f.values = models.CollectionInput{
		Name:   "",
		Author: "",
		Type:   models.ContentTypeComic,
		Genre:  []string{},
	}
}

func (f *CollectionForm) close() {
	if f.onClose != nil {
		f.onClose()
	}
}

func (f *CollectionForm) show(n models.Notification) {
	if f.sink != nil {
		f.sink.Show(n)
	}
}

func copyGenre(genre []string) []string {
	out := make([]string, len(genre))
	copy(out, genre)
	return out
}
