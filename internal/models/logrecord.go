package models

import (
	"encoding/json"
	"fmt"
)

// Log record discriminators. Every record stored under players/{id}/logs
// carries exactly one of these in its "type" field, which fixes the rest of
// its field set.
const (
	RecordWellness = "wellness"
	RecordThrow    = "throw"
	RecordLift     = "lift"
)

// DateLayout is the calendar-date encoding used by every log record.
// Dates carry no time component and compare correctly as strings.
const DateLayout = "2006-01-02"

// LogRecord is one immutable, dated event attributed to one player.
// Records are created once and only ever read.
type LogRecord interface {
	RecordType() string
	RecordDate() string
}

// WellnessRecord is a daily check-in. Feel scores run 1 (worst) to 10 (best).
type WellnessRecord struct {
	Type         string  `json:"type"`
	Date         string  `json:"date"`
	OverallFeel  int     `json:"overallFeel" validate:"required,min=1,max=10"`
	ArmFeel      int     `json:"armFeel" validate:"required,min=1,max=10"`
	ShoulderFeel int     `json:"shoulderFeel" validate:"required,min=1,max=10"`
	BackFeel     int     `json:"backFeel" validate:"required,min=1,max=10"`
	LegsFeel     int     `json:"legsFeel" validate:"required,min=1,max=10"`
	SleepHours   float64 `json:"sleepHours" validate:"gte=0,lte=24"`
	HitCalories  bool    `json:"hitCalories"`
	HitProtein   bool    `json:"hitProtein"`
	Notes        string  `json:"notes"`
}

// ThrowRecord logs one completed throwing day.
type ThrowRecord struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Day   int    `json:"day"`
	Focus string `json:"focus"`
	Feel  int    `json:"feel" validate:"required,min=1,max=10"`
}

// LiftRecord logs one exercise of one lifting session. A session that stages
// several exercises produces several of these in a single atomic batch.
type LiftRecord struct {
	Type     string  `json:"type"`
	Date     string  `json:"date"`
	DayName  string  `json:"dayName"`
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
}

func (r WellnessRecord) RecordType() string { return RecordWellness }
func (r WellnessRecord) RecordDate() string { return r.Date }
func (r ThrowRecord) RecordType() string    { return RecordThrow }
func (r ThrowRecord) RecordDate() string    { return r.Date }
func (r LiftRecord) RecordType() string     { return RecordLift }
func (r LiftRecord) RecordDate() string     { return r.Date }

// DecodeLogRecord unmarshals a raw store document into its concrete record
// type, selected by the "type" discriminator.
func DecodeLogRecord(raw []byte) (LogRecord, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("failed to decode log record: %w", err)
	}

	switch head.Type {
	case RecordWellness:
		var r WellnessRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("failed to decode wellness record: %w", err)
		}
		return r, nil
	case RecordThrow:
		var r ThrowRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("failed to decode throw record: %w", err)
		}
		return r, nil
	case RecordLift:
		var r LiftRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("failed to decode lift record: %w", err)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown log record type %q", head.Type)
	}
}
