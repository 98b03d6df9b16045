package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dsebastien/week-planner/pkg/models"
)

// BlockStore owns the ordered collection of time blocks, the single-selection
// state, and the active grid configuration. All mutations validate before
// touching state; a rejected mutation leaves the store unchanged.
type BlockStore struct {
	mu sync.RWMutex

	config models.GridConfig

	// Insertion-ordered block list; later entries stack above earlier ones.
	blocks []*models.TimeBlock

	// Map of block ID to block for quick lookup
	byID map[string]*models.TimeBlock

	selectedID string
}

// NewBlockStore creates an empty store for the given grid configuration.
func NewBlockStore(cfg models.GridConfig) (*BlockStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &BlockStore{
		config: cfg,
		byID:   make(map[string]*models.TimeBlock),
	}, nil
}

// Config returns the active grid configuration.
func (s *BlockStore) Config() models.GridConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Len returns the number of blocks.
func (s *BlockStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocks)
}

// AddBlock validates the block against the grid range and the existing
// blocks on the same day, then appends it. A block without an ID is assigned
// a fresh UUID. The stored copy, with computed bounds, is returned.
func (s *BlockStore) AddBlock(b models.TimeBlock) (models.TimeBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateLocked(b, ""); err != nil {
		return models.TimeBlock{}, err
	}

	if b.ID == "" {
		b.ID = uuid.New().String()
	} else if _, dup := s.byID[b.ID]; dup {
		return models.TimeBlock{}, models.NewOutOfRangeError("duplicate block id %s", b.ID)
	}
	b.RecomputeBounds(s.config)

	stored := b
	s.blocks = append(s.blocks, &stored)
	s.byID[stored.ID] = &stored
	return stored, nil
}

// RemoveBlock removes a block by ID, clearing the selection if it pointed at
// the removed block. Returns whether a block was found and removed.
func (s *BlockStore) RemoveBlock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, b := range s.blocks {
		if b.ID == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			break
		}
	}
	if s.selectedID == id {
		s.selectedID = ""
	}
	return true
}

// UpdateBlock merges the patch into the identified block and re-validates
// the result, excluding the block itself from the overlap check. On failure
// the stored block is left untouched and the error is returned.
func (s *BlockStore) UpdateBlock(id string, patch models.BlockPatch) (models.TimeBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[id]
	if !ok {
		return models.TimeBlock{}, models.NewOutOfRangeError("no block with id %s", id)
	}

	updated := patch.Apply(*existing)
	if err := s.validateLocked(updated, id); err != nil {
		return models.TimeBlock{}, err
	}

	updated.RecomputeBounds(s.config)
	*existing = updated
	return updated, nil
}

// UpdateBlockText sets a block's label without validation; text never
// conflicts with geometry. Returns whether the block exists.
func (s *BlockStore) UpdateBlockText(id, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return false
	}
	b.Label = text
	return true
}

// Blocks returns a copy of the block list in insertion order.
func (s *BlockStore) Blocks() []models.TimeBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TimeBlock, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = *b
	}
	return out
}

// Block returns the block with the given ID.
func (s *BlockStore) Block(id string) (models.TimeBlock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return models.TimeBlock{}, false
	}
	return *b, true
}

// BlockAt returns the topmost block whose pixel bounds contain the point.
// Later insertions stack above earlier ones, matching canvas draw order.
func (s *BlockStore) BlockAt(x, y float32) (models.TimeBlock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.blocks) - 1; i >= 0; i-- {
		if s.blocks[i].Bounds.Contains(x, y) {
			return *s.blocks[i], true
		}
	}
	return models.TimeBlock{}, false
}

// SelectBlock marks the block as the single selection. Returns whether the
// block exists; selecting an unknown ID clears the selection.
func (s *BlockStore) SelectBlock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		s.selectedID = ""
		return false
	}
	s.selectedID = id
	return true
}

// Deselect clears the selection.
func (s *BlockStore) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
}

// SelectedBlock returns the currently selected block, if any.
func (s *BlockStore) SelectedBlock() (models.TimeBlock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return models.TimeBlock{}, false
	}
	b, ok := s.byID[s.selectedID]
	if !ok {
		return models.TimeBlock{}, false
	}
	return *b, true
}

// SelectedID returns the ID of the selected block, or "".
func (s *BlockStore) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// ClearAll empties the collection and clears the selection.
func (s *BlockStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blocks = nil
	s.byID = make(map[string]*models.TimeBlock)
	s.selectedID = ""
}

// UpdateConfig replaces the grid configuration and recomputes every block's
// pixel bounds from its logical (day, start, end). Logical fields never
// change here, so blocks that fit the old grid may extend past a smaller
// new one; they keep their times and are clipped visually by the renderer.
func (s *BlockStore) UpdateConfig(cfg models.GridConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = cfg
	for _, b := range s.blocks {
		b.RecomputeBounds(cfg)
	}
	return nil
}

// ExportData snapshots the ordered block list and active configuration.
func (s *BlockStore) ExportData() models.PlannerData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocks := make([]models.TimeBlock, len(s.blocks))
	for i, b := range s.blocks {
		blocks[i] = *b
	}
	return models.PlannerData{Config: s.config, Blocks: blocks}
}

// ImportData replaces the whole store contents with the snapshot, running
// the same validation as AddBlock per entry. The first invalid entry aborts
// the import and leaves the prior state untouched.
func (s *BlockStore) ImportData(data models.PlannerData) error {
	if err := data.Config.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Build the replacement collection before touching current state.
	incoming := make([]*models.TimeBlock, 0, len(data.Blocks))
	byID := make(map[string]*models.TimeBlock, len(data.Blocks))
	for _, b := range data.Blocks {
		if err := validateAgainst(data.Config, incoming, b, ""); err != nil {
			return err
		}
		if b.ID == "" {
			b.ID = uuid.New().String()
		} else if _, dup := byID[b.ID]; dup {
			return models.NewOutOfRangeError("duplicate block id %s", b.ID)
		}
		b.RecomputeBounds(data.Config)
		stored := b
		incoming = append(incoming, &stored)
		byID[stored.ID] = &stored
	}

	s.config = data.Config
	s.blocks = incoming
	s.byID = byID
	s.selectedID = ""
	return nil
}

// validateLocked checks a block against the current config and collection.
// excludeID skips one block in the overlap scan, for self-updates.
func (s *BlockStore) validateLocked(b models.TimeBlock, excludeID string) error {
	return validateAgainst(s.config, s.blocks, b, excludeID)
}

func validateAgainst(cfg models.GridConfig, blocks []*models.TimeBlock, b models.TimeBlock, excludeID string) error {
	if b.Day < 0 || b.Day >= cfg.Days {
		return models.NewOutOfRangeError("day %d outside grid of %d days", b.Day, cfg.Days)
	}
	if b.Start >= b.End {
		return models.NewOutOfRangeError("block must start before it ends, got [%d, %d)", b.Start, b.End)
	}
	if b.Start < 0 || b.End > cfg.Rows {
		return models.NewOutOfRangeError("slots [%d, %d) outside grid of %d rows", b.Start, b.End, cfg.Rows)
	}
	for _, other := range blocks {
		if other.ID == excludeID && excludeID != "" {
			continue
		}
		if b.Overlaps(*other) {
			return models.NewOverlapError("block [%d, %d) overlaps %q [%d, %d) on day %d",
				b.Start, b.End, other.Label, other.Start, other.End, b.Day)
		}
	}
	return nil
}
