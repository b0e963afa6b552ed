package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Payload is an arbitrary JSON object attached to an activity entry.
type Payload map[string]interface{}

func (p Payload) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(Payload{})
	}
	return json.Marshal(p)
}

func (p *Payload) Scan(value interface{}) error {
	if value == nil {
		*p = Payload{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for Payload")
	}
}

// ActivityLog is one audit entry. Writes here are fire-and-forget: a failed
// insert is logged to the diagnostic channel and never fails the operation
// that produced it.
type ActivityLog struct {
	BaseModel
	ActionType   string  `gorm:"type:varchar(50);not null;index" json:"action_type"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	UserEmail    string  `gorm:"type:varchar(255)" json:"user_email"`
	AffectedData Payload `gorm:"type:jsonb" json:"affected_data"`
}
