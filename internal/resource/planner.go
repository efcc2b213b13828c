package resource

import (
	"strings"
	"time"

	"lifehub/internal/errors"
)

// Assignment is one (column, value) pair of an update plan.
type Assignment struct {
	Column string
	Value  interface{}
}

// UpdatePlan is the output of BuildUpdatePlan: an ordered assignment list
// plus the id/owner predicate. The repository executes it verbatim as a
// single conditional statement.
type UpdatePlan struct {
	Table       string
	Assignments []Assignment
	ID          uint
	OwnerID     uint
}

// BuildUpdatePlan turns a sparse payload into an update plan. Fields are
// visited in schema order, not payload order, so the generated statement
// is deterministic for a given field set. A field contributes an
// assignment whenever its key is present in the payload; false, zero and
// empty-string values all count as present, only a missing key is
// skipped. Payload keys that match no schema field are ignored. A plan
// with no assignments is a client error, not a no-op.
func BuildUpdatePlan(s Schema, payload map[string]interface{}, id, ownerID uint) (*UpdatePlan, error) {
	plan := &UpdatePlan{Table: s.Table, ID: id, OwnerID: ownerID}
	for _, f := range s.Fields {
		value, present := payload[f.Name]
		if !present {
			continue
		}
		normalized, err := ValidateField(f, value)
		if err != nil {
			return nil, err
		}
		plan.Assignments = append(plan.Assignments, Assignment{Column: f.Column, Value: normalized})
	}
	if len(plan.Assignments) == 0 {
		return nil, errors.ErrNoFields
	}
	return plan, nil
}

// Statement renders the plan as one parameterized UPDATE. The assignment
// values come first, then the updated_at refresh, then the id and owner
// predicate values, matching the placeholder order.
func (p *UpdatePlan) Statement(now time.Time) (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, len(p.Assignments)+3)

	sb.WriteString("UPDATE ")
	sb.WriteString(p.Table)
	sb.WriteString(" SET ")
	for i, a := range p.Assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Column)
		sb.WriteString(" = ?")
		args = append(args, a.Value)
	}
	sb.WriteString(", updated_at = ? WHERE id = ? AND user_id = ?")
	args = append(args, now, p.ID, p.OwnerID)

	return sb.String(), args
}
