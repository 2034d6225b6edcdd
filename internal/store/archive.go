package store

import "encoding/json"

// LoadArchivedProjectIDs returns the locally hidden project ids. Corrupted
// storage never errors: non-JSON or non-array content loads as empty, and
// non-numeric or non-positive entries are dropped.
func (s *Store) LoadArchivedProjectIDs() []int64 {
	raw, err := s.Get(KeyArchived)
	if err != nil || raw == "" {
		return []int64{}
	}

	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []int64{}
	}

	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		n, ok := entry.(float64)
		if !ok || n <= 0 || n != float64(int64(n)) {
			continue
		}
		ids = append(ids, int64(n))
	}
	return ids
}

// SaveArchivedProjectIDs persists the hidden project ids.
func (s *Store) SaveArchivedProjectIDs(ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.Set(KeyArchived, string(raw))
}

// ArchivedSet returns the hidden ids as a lookup set for the filter pipeline.
func (s *Store) ArchivedSet() map[int64]bool {
	set := make(map[int64]bool)
	for _, id := range s.LoadArchivedProjectIDs() {
		set[id] = true
	}
	return set
}

// ArchiveProject adds a project to the hidden list.
func (s *Store) ArchiveProject(id int64) error {
	ids := s.LoadArchivedProjectIDs()
	for _, have := range ids {
		if have == id {
			return nil
		}
	}
	return s.SaveArchivedProjectIDs(append(ids, id))
}

// UnarchiveProject removes a project from the hidden list.
func (s *Store) UnarchiveProject(id int64) error {
	ids := s.LoadArchivedProjectIDs()
	out := ids[:0]
	for _, have := range ids {
		if have != id {
			out = append(out, have)
		}
	}
	return s.SaveArchivedProjectIDs(out)
}
