package enumeration

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Member is the value-and-name pair behind a single enumeration constant.
// Embed it in the enumeration type and declare members at package level
// with MustMember. A member is complete and immutable once constructed.
type Member struct {
	value int
	name  string
}

// NewMember validates and returns a member. The value must be
// non-negative and the name must contain at least one non-space
// character; the error names the offending parameter.
func NewMember(value int, name string) (Member, error) {
	if value < 0 {
		return Member{}, fmt.Errorf("%w: got %d", ErrInvalidValue, value)
	}
	if strings.TrimSpace(name) == "" {
		return Member{}, fmt.Errorf("%w: got %q", ErrInvalidName, name)
	}
	return Member{value: value, name: name}, nil
}

// MustMember is NewMember for package-level declarations; it panics on
// invalid input.
func MustMember(value int, name string) Member {
	m, err := NewMember(value, name)
	if err != nil {
		panic(err)
	}
	return m
}

// Value returns the numeric value of the member.
func (m Member) Value() int { return m.value }

// Name returns the display name of the member.
func (m Member) Name() string { return m.name }

// String returns the member name.
func (m Member) String() string { return m.name }

// Compare orders members by numeric value: -1, 0, or 1.
func (m Member) Compare(other Member) int {
	switch {
	case m.value < other.value:
		return -1
	case m.value > other.value:
		return 1
	}
	return 0
}

// EqualityComponents returns the numeric value alone: members with one
// value are equal regardless of name. The embedding type supplies the
// LogicalType that completes the value-object surface.
func (m Member) EqualityComponents() []any { return []any{m.value} }

type memberJSON struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

// MarshalJSON encodes the member as {"value":V,"name":"N"}.
func (m Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(memberJSON{Value: m.value, Name: m.name})
}

// UnmarshalJSON decodes and re-validates a member. Set membership is not
// checked here; resolve through a Set lookup when the decoded value must
// belong to a closed set.
func (m *Member) UnmarshalJSON(data []byte) error {
	var raw memberJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	member, err := NewMember(raw.Value, raw.Name)
	if err != nil {
		return err
	}
	*m = member
	return nil
}

// MarshalText encodes the member as its name, for text contexts such as
// map keys.
func (m Member) MarshalText() ([]byte, error) {
	return []byte(m.name), nil
}
