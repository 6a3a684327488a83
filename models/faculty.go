package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// SubjectList always persists as an ordered JSON array of strings, even when
// clients send the subjects as a single comma-separated string.
type SubjectList []string

func (s *SubjectList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = normalizeSubjects(arr)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("subjects must be an array of strings or a comma-separated string")
	}
	*s = SplitSubjects(raw)
	return nil
}

// SplitSubjects coerces a comma-separated string into a SubjectList,
// dropping empty entries and trimming whitespace.
func SplitSubjects(raw string) SubjectList {
	return normalizeSubjects(strings.Split(raw, ","))
}

func normalizeSubjects(parts []string) SubjectList {
	subjects := SubjectList{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			subjects = append(subjects, p)
		}
	}
	return subjects
}

type Teacher struct {
	ID            int         `json:"id"`
	Name          string      `json:"name" validate:"required"`
	Gender        string      `json:"gender" validate:"required"`
	Qualification string      `json:"qual" validate:"required"`
	Role          string      `json:"role" validate:"required"`
	Subjects      SubjectList `json:"subjects" validate:"required,min=1"`
	Class         string      `json:"class" validate:"required"`
	Experience    string      `json:"exp" validate:"required"`
}

type NonTeachingStaff struct {
	ID            int    `json:"id"`
	Name          string `json:"name" validate:"required"`
	Gender        string `json:"gender" validate:"required"`
	Role          string `json:"role" validate:"required"`
	Qualification string `json:"qual" validate:"required"`
	Experience    string `json:"exp" validate:"required"`
}
