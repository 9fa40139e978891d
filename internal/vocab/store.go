package vocab

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"vocaquiz/internal/domain"

	"github.com/BurntSushi/toml"
)

// ErrUnknownSet is returned when a requested set name is not configured.
var ErrUnknownSet = errors.New("unknown vocabulary set")

// Store provides read-only access to the configured vocabulary sets.
type Store interface {
	// Get returns the set with the given name, or ErrUnknownSet.
	Get(name string) (*domain.VocabularySet, error)
	// Names returns all configured set names in sorted order.
	Names() []string
}

// memStore is the in-memory Store populated once at startup.
type memStore struct {
	sets  map[string]*domain.VocabularySet
	names []string
}

// NewStore builds a Store from already-validated sets.
func NewStore(sets ...*domain.VocabularySet) Store {
	s := &memStore{sets: make(map[string]*domain.VocabularySet, len(sets))}
	for _, set := range sets {
		s.sets[set.Name] = set
		s.names = append(s.names, set.Name)
	}
	sort.Strings(s.names)
	return s
}

func (s *memStore) Get(name string) (*domain.VocabularySet, error) {
	set, ok := s.sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	return set, nil
}

func (s *memStore) Names() []string {
	return s.names
}

// Load reads vocabulary sets from a TOML file. Each top-level array of
// tables is one set:
//
//	[[genki1]]
//	word = "おはよう;おはようございます"
//	translation = "Good morning"
//
// The file is validated on load; a malformed file is a configuration
// defect and loading fails rather than serving bad data.
func Load(path string) (Store, error) {
	var raw map[string][]domain.WordPair
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no sets", path)
	}

	sets := make([]*domain.VocabularySet, 0, len(raw))
	for name, pairs := range raw {
		set := &domain.VocabularySet{Name: name, Pairs: pairs}
		if err := validateSet(set); err != nil {
			return nil, fmt.Errorf("vocabulary set %q: %w", name, err)
		}
		sets = append(sets, set)
	}

	return NewStore(sets...), nil
}

// validateSet rejects empty sets and malformed alternative lists so the
// comparator can trust the delimiter convention at quiz time.
func validateSet(set *domain.VocabularySet) error {
	if len(set.Pairs) == 0 {
		return errors.New("set is empty")
	}

	for i, pair := range set.Pairs {
		if err := validateField(pair.Word); err != nil {
			return fmt.Errorf("entry %d word: %w", i+1, err)
		}
		if err := validateField(pair.Translation); err != nil {
			return fmt.Errorf("entry %d translation: %w", i+1, err)
		}
	}
	return nil
}

func validateField(field string) error {
	if strings.TrimSpace(field) == "" {
		return errors.New("field is empty")
	}
	for _, alt := range domain.Alternatives(field) {
		if strings.TrimSpace(alt) == "" {
			return fmt.Errorf("empty alternative in %q", field)
		}
	}
	return nil
}
