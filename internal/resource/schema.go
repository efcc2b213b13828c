// Package resource implements the schema-driven core shared by every
// user-owned resource type. A Schema declares a type's fields once; the
// validator and the update planner interpret it, so projects, ideas and
// todos never duplicate validation or SQL-building logic.
package resource

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Fields is a normalized field set keyed by field name, as produced by
// ValidateCreate.
type Fields map[string]interface{}

// Rule validates one decoded JSON value and returns its normalized form.
type Rule func(value interface{}) (interface{}, error)

// Field describes one writable field of a resource type.
type Field struct {
	// Name is the JSON payload key.
	Name string
	// Column is the database column the field maps to.
	Column string
	// Required rejects creates where the field is absent, null or an
	// empty string.
	Required bool
	// Default is applied on create when the field is absent. A nil
	// Default means the column keeps whatever the database assigns.
	Default interface{}
	// Rule validates and normalizes present values. A nil Rule accepts
	// anything.
	Rule Rule
}

// Schema declares one resource type: its table, its tag column for
// category filtering, its list ordering and its writable fields in the
// order update statements render them.
type Schema struct {
	Name      string
	Table     string
	TagColumn string
	ListOrder string
	Fields    []Field
}

// IsString accepts string values.
func IsString(value interface{}) (interface{}, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("must be a string")
	}
	return s, nil
}

// IsBool accepts boolean values.
func IsBool(value interface{}) (interface{}, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, errors.New("must be a boolean")
	}
	return b, nil
}

// IsNumber accepts numeric values and normalizes them to int. JSON
// decoding delivers every number as float64, so that is the common case.
func IsNumber(value interface{}) (interface{}, error) {
	switch n := value.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return nil, errors.New("must be a number")
	}
}

// IsDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates and
// normalizes them to time.Time.
func IsDate(value interface{}) (interface{}, error) {
	switch d := value.(type) {
	case time.Time:
		return d, nil
	case string:
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, nil
		}
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t, nil
		}
		return nil, errors.New("must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	default:
		return nil, errors.New("must be a date string")
	}
}

// OneOf accepts exactly the given string values.
func OneOf(allowed ...string) Rule {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if ok {
			for _, a := range allowed {
				if s == a {
					return s, nil
				}
			}
		}
		return nil, fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
	}
}
