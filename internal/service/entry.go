package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Pulkitsaraswat52/facegate/internal/ports"
	"github.com/Pulkitsaraswat52/facegate/internal/session"
)

// ErrForbidden is returned when the current session lacks the role a
// mutating entries action requires.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthenticated is returned when no session exists for a gated view.
var ErrUnauthenticated = errors.New("not authenticated")

// EntryServiceOptions groups dependencies for EntryService.
type EntryServiceOptions struct {
	API      ports.EntriesAPI
	Sessions *session.Store
}

// EntryService applies the role gate to the entries and faces views. Admins
// see every entry and may mutate; everyone else sees only their own rows and
// is read-only.
type EntryService struct {
	api      ports.EntriesAPI
	sessions *session.Store
}

// NewEntryService constructs a new EntryService.
func NewEntryService(opts EntryServiceOptions) (*EntryService, error) {
	if opts.API == nil {
		return nil, errors.New("entries API is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	return &EntryService{api: opts.API, sessions: opts.Sessions}, nil
}

// List returns the entries visible to the current session.
func (s *EntryService) List(ctx context.Context) ([]ports.Entry, error) {
	snap, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	entries, err := s.api.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if snap.IsAdmin() {
		return entries, nil
	}

	own := make([]ports.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.EqualFold(entry.Username, snap.Session.Username) {
			own = append(own, entry)
		}
	}
	return own, nil
}

// Add creates an entry. Admin only.
func (s *EntryService) Add(ctx context.Context, data string) (ports.Entry, error) {
	if err := s.requireAdmin(); err != nil {
		return ports.Entry{}, err
	}
	entry, err := s.api.AddEntry(ctx, data)
	if err != nil {
		return ports.Entry{}, fmt.Errorf("add entry: %w", err)
	}
	return entry, nil
}

// Update rewrites an entry's data. Admin only.
func (s *EntryService) Update(ctx context.Context, id int64, data string) (ports.Entry, error) {
	if err := s.requireAdmin(); err != nil {
		return ports.Entry{}, err
	}
	entry, err := s.api.UpdateEntry(ctx, id, data)
	if err != nil {
		return ports.Entry{}, fmt.Errorf("update entry: %w", err)
	}
	return entry, nil
}

// Delete removes an entry. Admin only.
func (s *EntryService) Delete(ctx context.Context, id int64) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.api.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// Faces returns the registered-faces listing for any authenticated session.
func (s *EntryService) Faces(ctx context.Context) ([]ports.FaceRecord, error) {
	if _, err := s.requireSession(); err != nil {
		return nil, err
	}
	faces, err := s.api.ListFaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faces: %w", err)
	}
	return faces, nil
}

func (s *EntryService) requireSession() (session.Snapshot, error) {
	snap := s.sessions.Snapshot()
	if !session.CanAccess(snap) {
		return session.Snapshot{}, ErrUnauthenticated
	}
	return snap, nil
}

func (s *EntryService) requireAdmin() error {
	snap, err := s.requireSession()
	if err != nil {
		return err
	}
	if !snap.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
