package snapshot

// Snapshot is a captured keyboard configuration.
type Snapshot struct {
	// Restore lists the commands to replay, in order
	Restore []string `json:"restore" yaml:"restore"`

	// Commands maps each command to its captured value
	Commands map[string]string `json:"commands" yaml:"commands"`
}

// Entry is a single command and its value.
type Entry struct {
	Key   string
	Value string
}

// New returns an empty snapshot.
func New() *Snapshot {
	return &Snapshot{
		Restore:  []string{},
		Commands: map[string]string{},
	}
}

// Add records value for key and appends key to the restore order.
// Adding a key again updates its value without changing the order.
func (s *Snapshot) Add(key, value string) {
	if s.Commands == nil {
		s.Commands = map[string]string{}
	}
	if _, ok := s.Commands[key]; !ok {
		s.Restore = append(s.Restore, key)
	}
	s.Commands[key] = value
}

// Entries returns the commands to replay in restore order. Keys without a
// value are left out.
func (s *Snapshot) Entries() []Entry {
	entries := make([]Entry, 0, len(s.Restore))
	for _, key := range s.Restore {
		value, ok := s.Commands[key]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries
}

// Missing returns the keys in the restore order that have no value.
func (s *Snapshot) Missing() []string {
	var missing []string
	for _, key := range s.Restore {
		if _, ok := s.Commands[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
