package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/anamneza/anamneza/internal/catalog"
)

// Identity holds the optional patient header fields. Purely descriptive; the
// report emits them only when at least one is non-empty.
type Identity struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Age        string `json:"age"`
	Occupation string `json:"occupation"`
}

// Empty reports whether all identity fields are blank.
func (i Identity) Empty() bool {
	return i.Name == "" && i.Surname == "" && i.Age == "" && i.Occupation == ""
}

// HistoryState is the answer recorded for one history section. All
// transitions return a fully consistent successor state, so a not-asked
// section can never carry stale detail text for the compiler to filter
// around.
type HistoryState struct {
	Asked  bool   `json:"asked"`
	Normal bool   `json:"normal"`
	Detail string `json:"detail"`
}

// NewHistoryState returns the initial not-asked state.
func NewHistoryState() HistoryState {
	return HistoryState{Normal: true}
}

// WithAsked toggles whether the section was addressed. Unchecking resets the
// subordinate fields.
func (s HistoryState) WithAsked(asked bool) HistoryState {
	if !asked {
		return NewHistoryState()
	}
	s.Asked = true
	return s
}

// WithNormal toggles the unremarkable flag. Marking a section abnormal seeds
// the detail text with the canned negative sentence as an editable starting
// point; marking it normal clears the detail. No-op on a not-asked section,
// and re-sending the current flag never re-seeds over an edited detail.
func (s HistoryState) WithNormal(normal bool, negativeText string) HistoryState {
	if !s.Asked || s.Normal == normal {
		return s
	}
	s.Normal = normal
	if normal {
		s.Detail = ""
	} else {
		s.Detail = negativeText
	}
	return s
}

// WithDetail replaces the free-text detail. Detail only exists on an asked,
// abnormal section; otherwise the transition is a no-op.
func (s HistoryState) WithDetail(detail string) HistoryState {
	if !s.Asked || s.Normal {
		return s
	}
	s.Detail = detail
	return s
}

// ExamState is the finding recorded for one physical-exam section. Subfinding
// flags exist only while the section is asked and abnormal.
type ExamState struct {
	Asked       bool            `json:"asked"`
	Normal      bool            `json:"normal"`
	Detail      string          `json:"detail"`
	Subfindings map[string]bool `json:"subfindings,omitempty"`
}

// NewExamState returns the initial not-asked state.
func NewExamState() ExamState {
	return ExamState{Normal: true}
}

// WithAsked toggles whether the section was examined. Unchecking resets the
// subordinate fields including all sub-finding flags.
func (s ExamState) WithAsked(asked bool) ExamState {
	if !asked {
		return NewExamState()
	}
	s.Asked = true
	return s
}

// WithNormal toggles the unremarkable flag, clearing detail and sub-findings
// on normal and seeding the canned negative text on abnormal. Re-sending the
// current flag is a no-op, so a repeated update never re-seeds over edits.
func (s ExamState) WithNormal(normal bool, negativeText string) ExamState {
	if !s.Asked || s.Normal == normal {
		return s
	}
	s.Normal = normal
	if normal {
		s.Detail = ""
		s.Subfindings = nil
	} else {
		s.Detail = negativeText
	}
	return s
}

// WithDetail replaces the free-text detail of an asked, abnormal section.
func (s ExamState) WithDetail(detail string) ExamState {
	if !s.Asked || s.Normal {
		return s
	}
	s.Detail = detail
	return s
}

// WithSubfinding sets or clears one sub-finding flag. The flag map is copied
// so prior snapshots stay untouched; the caller validates the key against the
// catalog.
func (s ExamState) WithSubfinding(key string, present bool) ExamState {
	if !s.Asked || s.Normal {
		return s
	}
	m := make(map[string]bool, len(s.Subfindings)+1)
	for k, v := range s.Subfindings {
		m[k] = v
	}
	if present {
		m[key] = true
	} else {
		delete(m, key)
	}
	if len(m) == 0 {
		m = nil
	}
	s.Subfindings = m
	return s
}

// Vitals holds the measured values. All numeric fields are optional; blood
// pressure is kept as the free-text token the user typed (e.g. "120/80").
// BMI is derived from weight and height and never set directly.
type Vitals struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	BloodPressure   string   `json:"blood_pressure,omitempty"`
	Pulse           *float64 `json:"pulse,omitempty"`
	RespiratoryRate *float64 `json:"respiratory_rate,omitempty"`
	SpO2            *float64 `json:"spo2,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	Height          *float64 `json:"height,omitempty"`
	BMI             *float64 `json:"bmi,omitempty"`
	Waist           *float64 `json:"waist,omitempty"`
}

// Session is one questionnaire in progress: the patient identity, the answer
// per eligible history section, the fixed exam structure and the vitals.
type Session struct {
	ID        uuid.UUID                              `json:"id"`
	Sex       catalog.Sex                            `json:"sex"`
	Patient   Identity                               `json:"patient"`
	History   map[catalog.HistoryKey]HistoryState    `json:"history"`
	Exam      map[catalog.ExamKey]ExamState          `json:"exam"`
	Vitals    Vitals                                 `json:"vitals"`
	CreatedAt time.Time                              `json:"created_at"`
	UpdatedAt time.Time                              `json:"updated_at"`
}

// New creates a fresh session for a patient of the given sex, with one entry
// per eligible history section and the fixed exam structure.
func New(sex catalog.Sex) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.New(),
		Sex:       sex,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.ResetObservations()
	return s
}

// ResetObservations discards all section state and vitals, rebuilding the
// section maps for the session's current sex. The patient identity survives.
func (s *Session) ResetObservations() {
	s.History = make(map[catalog.HistoryKey]HistoryState)
	for _, def := range catalog.EligibleHistory(s.Sex) {
		s.History[def.Key] = NewHistoryState()
	}
	s.Exam = make(map[catalog.ExamKey]ExamState, len(catalog.ExamSections))
	for i := range catalog.ExamSections {
		s.Exam[catalog.ExamSections[i].Key] = NewExamState()
	}
	s.Vitals = Vitals{}
}

// Clone returns a copy of the session that shares no mutable state with the
// original. Sub-finding maps are the only nested mutable structure; section
// states are values.
func (s *Session) Clone() *Session {
	c := *s
	c.History = make(map[catalog.HistoryKey]HistoryState, len(s.History))
	for k, v := range s.History {
		c.History[k] = v
	}
	c.Exam = make(map[catalog.ExamKey]ExamState, len(s.Exam))
	for k, v := range s.Exam {
		if v.Subfindings != nil {
			m := make(map[string]bool, len(v.Subfindings))
			for sk, sv := range v.Subfindings {
				m[sk] = sv
			}
			v.Subfindings = m
		}
		c.Exam[k] = v
	}
	return &c
}
