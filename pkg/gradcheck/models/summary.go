package models

import (
	"encoding/json"
	"fmt"
)

// Keys used for the non-category entries of a Summary.
const (
	GraduationTotalKey = "graduation_total"
	LectureNoteKey     = "lecture_note"
	EnglishNoteKey     = "english_note"
)

// CreditPair is an earned/required credit pair.
type CreditPair struct {
	Earned   int `json:"earned"`
	Required int `json:"required"`
}

// Summary holds best-effort aggregates scanned from the table header.
// It serializes as a single flat object keyed by category label.
type Summary struct {
	Totals      map[string]CreditPair
	LectureNote *string
	EnglishNote *string
}

// NewSummary returns an empty Summary.
func NewSummary() Summary {
	return Summary{Totals: make(map[string]CreditPair)}
}

// MarshalJSON flattens totals and notes into one object.
func (s Summary) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Totals)+2)
	for k, v := range s.Totals {
		out[k] = v
	}
	if s.LectureNote != nil {
		out[LectureNoteKey] = *s.LectureNote
	}
	if s.EnglishNote != nil {
		out[EnglishNoteKey] = *s.EnglishNote
	}
	return json.Marshal(out)
}

// UnmarshalJSON reverses MarshalJSON.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewSummary()
	for k, v := range raw {
		switch k {
		case LectureNoteKey, EnglishNoteKey:
			var note string
			if err := json.Unmarshal(v, &note); err != nil {
				return fmt.Errorf("summary %s: %w", k, err)
			}
			if k == LectureNoteKey {
				s.LectureNote = &note
			} else {
				s.EnglishNote = &note
			}
		default:
			var pair CreditPair
			if err := json.Unmarshal(v, &pair); err != nil {
				return fmt.Errorf("summary %s: %w", k, err)
			}
			s.Totals[k] = pair
		}
	}
	return nil
}
