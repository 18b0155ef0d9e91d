// Package domainkit provides building blocks for rich domain models: value
// objects with structural equality, entities with identity equality, closed
// validated enumerations, coded errors, and a unit result for side-effecting
// operations.
//
// This package re-exports the most common types and constructors. The
// sub-packages under pkg/ carry the full API, including the generic
// enumeration sets and entity bases:
//
//	status, err := domainkit.NewMember(1, "Active")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	notFound := domainkit.NewError("ORDER_NOT_FOUND", "order does not exist")
//	if errors.Is(err, notFound) {
//	    // matched by code, regardless of message
//	}
//
// Enumeration types are normally not written by hand. Declare them in a
// manifest and run cmd/enumgen:
//
//	enumgen --manifest domain.toml
package domainkit

import (
	"fmt"

	"github.com/bft-labs/domainkit/pkg/entity"
	"github.com/bft-labs/domainkit/pkg/enumeration"
	"github.com/bft-labs/domainkit/pkg/fault"
	"github.com/bft-labs/domainkit/pkg/log"
	"github.com/bft-labs/domainkit/pkg/unit"
	"github.com/bft-labs/domainkit/pkg/value"
)

// ValueObject is any type compared structurally by its equality components.
type ValueObject = value.Object

// LogicalType names a domain type across wrapping layers such as proxies
// or generated decorators.
type LogicalType = value.Type

// Member is a single validated enumeration member.
type Member = enumeration.Member

// Error is a coded domain error. Two Errors match when their codes match.
type Error = fault.Error

// Unit is the result of an operation that succeeds without producing a value.
type Unit = unit.Unit

// Logger is the interface for structured logging.
type Logger = log.Logger

// LogField represents a structured log field.
type LogField = log.Field

// UnitValue is the canonical Unit.
var UnitValue = unit.Value

// NewMember validates and creates an enumeration member. The value must be
// non-negative and the name non-blank.
func NewMember(val int, name string) (Member, error) {
	return enumeration.NewMember(val, name)
}

// MustMember is like NewMember but panics on invalid input. It is intended
// for package-level enum declarations.
func MustMember(val int, name string) Member {
	return enumeration.MustMember(val, name)
}

// NewError creates a coded error. The code participates in equality, the
// message is diagnostic only.
func NewError(code, message string) Error {
	return fault.New(code, message)
}

// Equal reports whether two value objects are structurally equal.
func Equal(a, b ValueObject) bool {
	return value.Equal(a, b)
}

// Hash returns a stable hash of a value object's logical type and
// equality components.
func Hash(o ValueObject) uint64 {
	return value.Hash(o)
}

// NewNoopLogger returns a logger that discards all messages.
func NewNoopLogger() Logger {
	return log.NewNoopLogger()
}

// SetLogger routes enumeration diagnostics to the given logger. Passing nil
// restores the no-op default.
func SetLogger(l Logger) {
	enumeration.SetLogger(l)
}

// ModuleVersions reports the version of each sub-package.
func ModuleVersions() map[string]string {
	return map[string]string{
		"entity":      entity.Version,
		"enumeration": enumeration.Version,
		"fault":       fault.Version,
		"log":         log.Version,
		"unit":        unit.Version,
		"value":       value.Version,
	}
}

// CompatibilityMatrix reports the minimum compatible version of each
// sub-package.
func CompatibilityMatrix() map[string]string {
	return map[string]string{
		"entity":      entity.MinCompatibleVersion,
		"enumeration": enumeration.MinCompatibleVersion,
		"fault":       fault.MinCompatibleVersion,
		"log":         log.MinCompatibleVersion,
		"unit":        unit.MinCompatibleVersion,
		"value":       value.MinCompatibleVersion,
	}
}

// ValidateModuleVersions checks that all sub-package versions satisfy their
// minimum compatible versions.
func ValidateModuleVersions() error {
	versions := ModuleVersions()
	for name, minVersion := range CompatibilityMatrix() {
		if !isVersionCompatible(versions[name], minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, versions[name], minVersion)
		}
	}
	return nil
}

// isVersionCompatible checks if version >= minVersion using semantic versioning.
// Assumes versions are in format "major.minor.patch".
func isVersionCompatible(version, minVersion string) bool {
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
