package odoo

import (
	"context"
	"encoding/json"

	"erpgate/internal/domain/entity"
	"erpgate/internal/domain/service"
	"erpgate/internal/errors"
)

const employeeModel = "hr.employee"

var employeeFields = []string{"id", "name", "last_name", "job_id", "department_id"}

type employeeRecord struct {
	ID           json.RawMessage `json:"id"`
	Name         json.RawMessage `json:"name"`
	LastName     json.RawMessage `json:"last_name"`
	JobID        json.RawMessage `json:"job_id"`
	DepartmentID json.RawMessage `json:"department_id"`
}

// FindEmployeeProfile looks up the employee linked to the remote user.
func (c *client) FindEmployeeProfile(ctx context.Context, sessionID string, remoteUserID int64) (*entity.EmployeeProfile, error) {
	raw, err := c.Call(ctx, sessionID, service.RemoteCall{
		Model:  employeeModel,
		Method: "search_read",
		Args:   []any{[]any{[]any{"user_id", "=", remoteUserID}}},
		Kwargs: map[string]any{
			"fields": employeeFields,
			"limit":  1,
		},
	})
	if err != nil {
		return nil, err
	}

	var records []employeeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrap(err, "decode employee records")
	}
	if len(records) == 0 {
		return nil, nil
	}

	record := records[0]
	id, ok := decodeID(record.ID)
	if !ok {
		return nil, errors.New("employee record has no id")
	}

	profile := &entity.EmployeeProfile{
		EmployeeID: id,
		Name:       decodeString(record.Name),
		LastName:   decodeString(record.LastName),
	}
	profile.JobID, profile.JobName = decodeMany2One(record.JobID)
	profile.DepartmentID, profile.DepartmentName = decodeMany2One(record.DepartmentID)

	return profile, nil
}

// decodeID reads a positive integer id; the backend sends false for an unset id.
func decodeID(raw json.RawMessage) (int64, bool) {
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// decodeString reads a char field; false and null become "".
func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}

	return s
}

// decodeMany2One reads an [id, display_name] pair; false becomes zero values.
func decodeMany2One(raw json.RawMessage) (int64, string) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return 0, ""
	}

	id, ok := decodeID(pair[0])
	if !ok {
		return 0, ""
	}

	return id, decodeString(pair[1])
}
