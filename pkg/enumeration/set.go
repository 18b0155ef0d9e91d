package enumeration

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bft-labs/domainkit/pkg/log"
)

// Valued is satisfied by enumeration members: anything carrying a numeric
// value and a display name. Embedding Member satisfies it.
type Valued interface {
	Value() int
	Name() string
}

// Set is the closed collection of members for one enumeration type,
// declared once at package level:
//
//	var Statuses = enumeration.NewSet("Status", Active, Suspended)
//
// The lookup indexes are built and validated on first use, exactly once,
// and the outcome is cached: a set declared with duplicate or invalid
// members returns the same configuration error from every operation. A
// Set must not be copied after first use.
type Set[T Valued] struct {
	name    string
	members []T

	once    sync.Once
	byValue map[int]T
	byName  map[string]T
	err     error
}

// NewSet declares the closed set of members for an enumeration type.
// Validation is deferred to the first operation; see Validate.
func NewSet[T Valued](name string, members ...T) *Set[T] {
	return &Set[T]{name: name, members: members}
}

// Name returns the display name of the set.
func (s *Set[T]) Name() string { return s.name }

// Validate forces index construction and reports the configuration
// error, if any. Lookups validate lazily; call Validate to surface a
// misdeclared set eagerly, e.g. from an init path or a test.
func (s *Set[T]) Validate() error { return s.build() }

// build indexes the members exactly once and caches the outcome.
// Each member's Value and Name are read a single time.
func (s *Set[T]) build() error {
	s.once.Do(func() {
		byValue := make(map[int]T, len(s.members))
		byName := make(map[string]T, len(s.members))
		for _, m := range s.members {
			v, name := m.Value(), m.Name()
			if v < 0 {
				s.err = fmt.Errorf("%w: got %d for %q in set %q", ErrInvalidValue, v, name, s.name)
				break
			}
			if strings.TrimSpace(name) == "" {
				s.err = fmt.Errorf("%w: got %q in set %q", ErrInvalidName, name, s.name)
				break
			}
			if _, ok := byValue[v]; ok {
				s.err = fmt.Errorf("%w: %d in set %q", ErrDuplicateValue, v, s.name)
				break
			}
			if _, ok := byName[name]; ok {
				s.err = fmt.Errorf("%w: %q in set %q", ErrDuplicateName, name, s.name)
				break
			}
			byValue[v] = m
			byName[name] = m
		}
		if s.err != nil {
			logger().Error("enumeration set rejected", log.String("set", s.name), log.Err(s.err))
			return
		}
		s.byValue = byValue
		s.byName = byName
		logger().Debug("enumeration set indexed", log.String("set", s.name), log.Int("members", len(s.members)))
	})
	return s.err
}

// FromValue returns the member with the given numeric value. The error
// reports the requested value and the set name; a misdeclared set returns
// its configuration error instead.
func (s *Set[T]) FromValue(v int) (T, error) {
	var zero T
	if err := s.build(); err != nil {
		return zero, err
	}
	m, ok := s.byValue[v]
	if !ok {
		return zero, fmt.Errorf("%w: no member with value %d in set %q", ErrNotFound, v, s.name)
	}
	return m, nil
}

// TryFromValue returns the member with the given value. It reports false
// both when no member matches and when the set configuration is invalid.
func (s *Set[T]) TryFromValue(v int) (T, bool) {
	if err := s.build(); err != nil {
		var zero T
		return zero, false
	}
	m, ok := s.byValue[v]
	return m, ok
}

// FromName returns the member with the given name. Names match exactly,
// case included.
func (s *Set[T]) FromName(name string) (T, error) {
	var zero T
	if err := s.build(); err != nil {
		return zero, err
	}
	m, ok := s.byName[name]
	if !ok {
		return zero, fmt.Errorf("%w: no member named %q in set %q", ErrNotFound, name, s.name)
	}
	return m, nil
}

// TryFromName returns the member with the given name. It reports false
// both when no member matches and when the set configuration is invalid.
func (s *Set[T]) TryFromName(name string) (T, bool) {
	if err := s.build(); err != nil {
		var zero T
		return zero, false
	}
	m, ok := s.byName[name]
	return m, ok
}

// ContainsValue reports whether any member has the given value.
func (s *Set[T]) ContainsValue(v int) bool {
	_, ok := s.TryFromValue(v)
	return ok
}

// ContainsName reports whether any member has the given name.
func (s *Set[T]) ContainsName(name string) bool {
	_, ok := s.TryFromName(name)
	return ok
}

// All returns every member in declaration order. The slice is a copy;
// mutating it does not affect the set.
func (s *Set[T]) All() ([]T, error) {
	if err := s.build(); err != nil {
		return nil, err
	}
	out := make([]T, len(s.members))
	copy(out, s.members)
	return out, nil
}

// Len returns the number of members in the set.
func (s *Set[T]) Len() (int, error) {
	if err := s.build(); err != nil {
		return 0, err
	}
	return len(s.members), nil
}
