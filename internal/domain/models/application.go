// internal/domain/models/application.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Application statuses reported by the upstream applications endpoint.
// Any other value is legal on the wire and must render as "Unknown".
const (
	StatusPending      = "pending"
	StatusAccepted     = "accepted"
	StatusRejected     = "rejected"
	StatusInterviewing = "interviewing"
)

// Application is one job application owned by the signed-in job seeker.
// It is transient: fetched fresh for every dashboard load and never cached.
type Application struct {
	ID          ApplicationID `json:"id"`
	JobTitle    string        `json:"job_title"`
	Company     string        `json:"company"`
	Status      string        `json:"status"`       // pending | accepted | rejected | interviewing | other
	AppliedDate string        `json:"applied_date"` // ISO date or timestamp, formatted at render time
}

// ApplicationID is the upstream identifier of an application.
// The upstream emits integer ids; string ids are accepted as well.
type ApplicationID string

// UnmarshalJSON accepts a JSON number or a JSON string.
func (id *ApplicationID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ApplicationID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("application id: %w", err)
	}
	*id = ApplicationID(n.String())
	return nil
}

func (id ApplicationID) String() string { return string(id) }
