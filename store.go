package cargoportl

import (
	"context"
	"log"
	"slices"
	"strings"
	"sync"
)

// API is the contract this package needs from the remote cargo server.
// The cargoapi package provides the HTTP implementation.
type API interface {
	Clients(ctx context.Context) ([]Client, error)
	Shipments(ctx context.Context) ([]Shipment, error)
	Invoices(ctx context.Context) ([]Invoice, error)
	CreateFullEntry(ctx context.Context, entry FullEntry) (FullEntry, error)
	UpdateFullEntry(ctx context.Context, entry FullEntry) (FullEntry, error)
	DeleteFullEntry(ctx context.Context, keys DeleteKeys) (ID, error)
}

// Store owns one collection's state: the authoritative list (full server
// truth) and the filtered list (subset matching the last search query),
// plus the status of the last request. All network I/O goes through the
// configured fetch function; Search never touches the network.
type Store[E any] struct {
	mu            sync.RWMutex
	authoritative []E
	filtered      []E
	loading       bool
	lastErr       string
	gen           uint64 // load generation, stale responses are dropped

	id    func(E) ID
	match func(E, string) bool
	fetch func(context.Context) ([]E, error)
}

func newStore[E any](id func(E) ID, match func(E, string) bool, fetch func(context.Context) ([]E, error)) *Store[E] {
	return &Store[E]{id: id, match: match, fetch: fetch}
}

// Load replaces both lists with the server's current truth. A load that is
// superseded by a newer one before its response arrives is dropped, so a
// page that triggered a fetch and moved on cannot clobber fresher state.
// On failure the existing lists are left untouched and the error message is
// recorded in LastError.
func (s *Store[E]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	list, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// a newer load owns the state now
		return nil
	}
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.authoritative = list
	s.filtered = list
	return nil
}

// Search sets the filtered list to the authoritative records matching the
// query, case-insensitively. An empty query matches everything. It is a
// purely local operation.
func (s *Store[E]) Search(query string) {
	q := strings.ToLower(query)
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := make([]E, 0, len(s.authoritative))
	for _, e := range s.authoritative {
		if s.match(e, q) {
			filtered = append(filtered, e)
		}
	}
	s.filtered = filtered
}

// Authoritative returns a snapshot of the full server-truth list.
func (s *Store[E]) Authoritative() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.authoritative)
}

// Filtered returns a snapshot of the list matching the last search query.
func (s *Store[E]) Filtered() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.filtered)
}

// IsLoading reports whether a load is in flight.
func (s *Store[E]) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the message of the last failed operation, or "" if the
// last operation succeeded.
func (s *Store[E]) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// append adds a freshly created record to both lists.
func (s *Store[E]) append(e E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authoritative = append(s.authoritative, e)
	s.filtered = append(s.filtered, e)
}

// replace swaps the record with e's id in both lists independently, so a
// narrowed filtered list stays correct. An id unknown to the store is a
// warning, not an error: the next load reconciles with server truth.
func (s *Store[E]) replace(e E) {
	id := s.id(e)
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.authoritative {
		if s.id(s.authoritative[i]) == id {
			s.authoritative[i] = e
			found = true
		}
	}
	for i := range s.filtered {
		if s.id(s.filtered[i]) == id {
			s.filtered[i] = e
		}
	}
	if !found {
		log.Printf("warning: update for id %q not in local state, dropped", id)
	}
}

// remove splices the record with the given id out of both lists.
func (s *Store[E]) remove(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authoritative = slices.DeleteFunc(s.authoritative, func(e E) bool { return s.id(e) == id })
	s.filtered = slices.DeleteFunc(s.filtered, func(e E) bool { return s.id(e) == id })
}

// setError records a failed mutation without touching the lists.
func (s *Store[E]) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastErr = err.Error()
}

// Stores is the composition root for the three resource stores. Pages
// receive it explicitly; there is no package-level state.
type Stores struct {
	Clients   *Store[Client]
	Shipments *Store[Shipment]
	Invoices  *Store[Invoice]

	api API
}

// NewStores wires the three stores to the given server client. Search
// fields follow the header search box: clients by name, shipments and
// invoices by id.
func NewStores(api API) *Stores {
	return &Stores{
		Clients: newStore(
			func(c Client) ID { return c.ID },
			func(c Client, q string) bool { return strings.Contains(strings.ToLower(c.Name), q) },
			api.Clients,
		),
		Shipments: newStore(
			func(s Shipment) ID { return s.ID },
			func(s Shipment, q string) bool { return strings.Contains(strings.ToLower(s.ID.String()), q) },
			api.Shipments,
		),
		Invoices: newStore(
			func(i Invoice) ID { return i.ID },
			func(i Invoice, q string) bool { return strings.Contains(strings.ToLower(i.ID.String()), q) },
			api.Invoices,
		),
		api: api,
	}
}

// CreateEntry posts a new full entry and, on success, appends each created
// sub-record to its store. A failed create leaves all stores untouched
// apart from the shipment store's LastError.
func (s *Stores) CreateEntry(ctx context.Context, entry FullEntry) (FullEntry, error) {
	created, err := s.api.CreateFullEntry(ctx, entry)
	if err != nil {
		s.Shipments.setError(err)
		return FullEntry{}, err
	}
	if !created.Shipment.ID.IsZero() {
		s.Shipments.append(created.Shipment)
	}
	if !created.Client.ID.IsZero() {
		s.Clients.append(created.Client)
	}
	if !created.Invoice.ID.IsZero() {
		s.Invoices.append(created.Invoice)
	}
	return created, nil
}

// UpdateEntry puts the edited full entry and, on success, swaps each
// sub-record into its store by id.
func (s *Stores) UpdateEntry(ctx context.Context, entry FullEntry) (FullEntry, error) {
	updated, err := s.api.UpdateFullEntry(ctx, entry)
	if err != nil {
		s.Shipments.setError(err)
		return FullEntry{}, err
	}
	if !updated.Shipment.ID.IsZero() {
		s.Shipments.replace(updated.Shipment)
	}
	if !updated.Client.ID.IsZero() {
		s.Clients.replace(updated.Client)
	}
	if !updated.Invoice.ID.IsZero() {
		s.Invoices.replace(updated.Invoice)
	}
	return updated, nil
}

// DeleteEntry deletes the full entry identified by keys and, on success,
// splices every sub-record out of its store. The server cascades the
// companions; the local state must not wait for a reload to reflect that.
func (s *Stores) DeleteEntry(ctx context.Context, keys DeleteKeys) error {
	deleted, err := s.api.DeleteFullEntry(ctx, keys)
	if err != nil {
		s.Shipments.setError(err)
		return err
	}
	if deleted.IsZero() {
		deleted = keys.ShipmentID
	}
	s.Shipments.remove(deleted)
	if !keys.InvoiceID.IsZero() {
		s.Invoices.remove(keys.InvoiceID)
	}
	if !keys.ClientID.IsZero() {
		s.Clients.remove(keys.ClientID)
	}
	return nil
}
