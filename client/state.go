package client

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/Wjpayne/Inventory-Management/controllers"
	"github.com/Wjpayne/Inventory-Management/models"
)

// ErrDraftIncomplete means the new-item draft failed the local presence check,
// so no request was sent.
var ErrDraftIncomplete = errors.New("draft is incomplete")

// ErrSaveInFlight rejects a second edit-save for an item whose previous save
// has not come back yet.
var ErrSaveInFlight = errors.New("save already in flight for this item")

// ErrNoEditSession means edit-save was called while no item was being edited.
var ErrNoEditSession = errors.New("no edit session open")

const (
	msgLoadFailed    = "Failed to load inventory."
	msgAddFailed     = "Failed to add item."
	msgDeleteFailed  = "Failed to delete item."
	msgUpdateFailed  = "Failed to update item."
	msgAddSuccess    = "Item added successfully!"
	msgDeleteSuccess = "Item deleted successfully!"
	msgUpdateSuccess = "Item updated successfully!"
)

// Draft mirrors the new-item form: raw strings, validated only on Add.
type Draft struct {
	Name     string
	Quantity string
	Unit     string
}

// StateManager keeps a local snapshot of the inventory synchronized with the
// service. The snapshot is a display cache, never the source of truth; the
// owned slice is only handed out as a copy.
type StateManager struct {
	api *Client

	mu          sync.Mutex
	items       []models.Item
	draft       Draft
	edit        *models.Item
	loading     bool
	lastError   string
	lastSuccess string
	saving      map[uint]bool
}

func NewStateManager(api *Client) *StateManager {
	return &StateManager{
		api:    api,
		items:  []models.Item{},
		saving: make(map[uint]bool),
	}
}

// Load replaces the local snapshot with the full server list. On failure the
// list stays empty and the error banner is set.
func (m *StateManager) Load(ctx context.Context) error {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	items, err := m.api.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.items = []models.Item{}
		m.lastError = msgLoadFailed
		return err
	}
	if items == nil {
		items = []models.Item{}
	}
	m.items = items
	return nil
}

// Add validates the draft locally and creates the item. An incomplete draft
// sends nothing; a request failure leaves the draft intact for retry.
func (m *StateManager) Add(ctx context.Context) error {
	m.mu.Lock()
	draft := m.draft
	m.mu.Unlock()

	if draft.Name == "" || draft.Quantity == "" || draft.Unit == "" {
		return ErrDraftIncomplete
	}
	quantity, err := strconv.ParseFloat(draft.Quantity, 64)
	if err != nil {
		return ErrDraftIncomplete
	}

	created, err := m.api.Create(ctx, controllers.ItemPayload{
		Name:     draft.Name,
		Quantity: &quantity,
		Unit:     draft.Unit,
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.lastError = msgAddFailed
		return err
	}
	m.items = append(m.items, created)
	m.draft = Draft{}
	m.lastSuccess = msgAddSuccess
	return nil
}

// Delete removes the item on the server first; there is no optimistic removal.
func (m *StateManager) Delete(ctx context.Context, id uint) error {
	err := m.api.Delete(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.lastError = msgDeleteFailed
		return err
	}
	kept := m.items[:0]
	for _, item := range m.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
	m.lastSuccess = msgDeleteSuccess
	return nil
}

// EditOpen copies the cached item by value into the edit draft. It reports
// false when the id is not in the local snapshot.
func (m *StateManager) EditOpen(id uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.ID == id {
			edit := item
			m.edit = &edit
			return true
		}
	}
	return false
}

func (m *StateManager) SetEditName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.edit != nil {
		m.edit.Name = name
	}
}

func (m *StateManager) SetEditQuantity(quantity float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.edit != nil {
		m.edit.Quantity = quantity
	}
}

func (m *StateManager) SetEditUnit(unit string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.edit != nil {
		m.edit.Unit = unit
	}
}

// EditSave sends the full edit draft. On success the matching cached record is
// replaced and the session closes; on failure the session stays open so the
// user can retry. Only one save per item may be in flight.
func (m *StateManager) EditSave(ctx context.Context) error {
	m.mu.Lock()
	if m.edit == nil {
		m.mu.Unlock()
		return ErrNoEditSession
	}
	draft := *m.edit
	if m.saving[draft.ID] {
		m.mu.Unlock()
		return ErrSaveInFlight
	}
	m.saving[draft.ID] = true
	m.mu.Unlock()

	updated, err := m.api.Update(ctx, draft.ID, controllers.ItemPayload{
		Name:     draft.Name,
		Quantity: &draft.Quantity,
		Unit:     draft.Unit,
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saving, draft.ID)
	if err != nil {
		m.lastError = msgUpdateFailed
		return err
	}
	for i := range m.items {
		if m.items[i].ID == updated.ID {
			m.items[i] = updated
		}
	}
	if m.edit != nil && m.edit.ID == draft.ID {
		m.edit = nil
	}
	m.lastSuccess = msgUpdateSuccess
	return nil
}

func (m *StateManager) EditCancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edit = nil
}

// Items returns a copy of the local snapshot.
func (m *StateManager) Items() []models.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]models.Item, len(m.items))
	copy(items, m.items)
	return items
}

func (m *StateManager) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

func (m *StateManager) SetDraft(draft Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = draft
}

// Editing returns a copy of the edit draft and whether a session is open.
func (m *StateManager) Editing() (models.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.edit == nil {
		return models.Item{}, false
	}
	return *m.edit, true
}

func (m *StateManager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *StateManager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastError
}

func (m *StateManager) LastSuccess() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSuccess
}

func (m *StateManager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = ""
}

func (m *StateManager) ClearSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSuccess = ""
}
