package resource

import (
	"lifehub/internal/errors"
)

// ValidateCreate checks a create payload against the schema: defaults are
// applied for absent fields, required fields must be present and
// non-empty, and every present field must pass its rule. The returned
// field set is normalized and safe to assign into a model.
func ValidateCreate(s Schema, payload map[string]interface{}) (Fields, error) {
	out := make(Fields, len(s.Fields))
	for _, f := range s.Fields {
		value, present := payload[f.Name]
		if !present || value == nil {
			if f.Required {
				return nil, errors.NewValidationError(f.Name, "is required")
			}
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		if f.Required {
			if str, ok := value.(string); ok && str == "" {
				return nil, errors.NewValidationError(f.Name, "is required")
			}
		}
		normalized, err := applyRule(f, value)
		if err != nil {
			return nil, err
		}
		out[f.Name] = normalized
	}
	return out, nil
}

// ValidateField checks a single payload value against the field's rule.
// Defaults and required-presence do not apply here: updates only touch
// fields the caller sent.
func ValidateField(f Field, value interface{}) (interface{}, error) {
	return applyRule(f, value)
}

func applyRule(f Field, value interface{}) (interface{}, error) {
	// An explicit null clears the column on update; rules only judge
	// concrete values.
	if value == nil || f.Rule == nil {
		return value, nil
	}
	normalized, err := f.Rule(value)
	if err != nil {
		return nil, errors.NewValidationError(f.Name, err.Error())
	}
	return normalized, nil
}
