package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anamneza/anamneza/internal/catalog"
)

// ReportGenerator compiles a session snapshot into the free-text clinical
// note. Implemented by the report platform package.
type ReportGenerator interface {
	Generate(s *Session) string
}

// Service applies questionnaire mutations to stored sessions. Every mutation
// works on a clone, applies the state transitions and writes the consistent
// result back, so readers never observe a half-applied cascade.
type Service struct {
	repo Repository
	gen  ReportGenerator
}

// NewService creates a session service.
func NewService(repo Repository, gen ReportGenerator) *Service {
	return &Service{repo: repo, gen: gen}
}

// Create starts a fresh session for a patient of the given sex.
func (s *Service) Create(ctx context.Context, sex catalog.Sex) (*Session, error) {
	if !sex.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSex, sex)
	}
	sess := New(sex)
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the current session snapshot.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.repo.Get(ctx, id)
}

// Delete discards a session.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// SetSex switches the patient sex. Section applicability depends on it, so a
// change resets every observation to its initial empty form; the patient
// identity is kept. Setting the same sex again is a no-op.
func (s *Service) SetSex(ctx context.Context, id uuid.UUID, sex catalog.Sex) (*Session, error) {
	if !sex.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSex, sex)
	}
	return s.mutate(ctx, id, func(sess *Session) error {
		if sess.Sex == sex {
			return nil
		}
		sess.Sex = sex
		sess.ResetObservations()
		return nil
	})
}

// UpdatePatient replaces the identity fields.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, ident Identity) (*Session, error) {
	return s.mutate(ctx, id, func(sess *Session) error {
		sess.Patient = ident
		return nil
	})
}

// HistoryUpdate carries one history-section mutation. Nil fields are left
// untouched; set fields apply in asked, normal, detail order.
type HistoryUpdate struct {
	Asked  *bool   `json:"asked"`
	Normal *bool   `json:"normal"`
	Detail *string `json:"detail"`
}

// UpdateHistory applies a mutation to one history section. Sections the
// catalog does not declare, or that are not eligible for the session's sex,
// are rejected.
func (s *Service) UpdateHistory(ctx context.Context, id uuid.UUID, key catalog.HistoryKey, upd HistoryUpdate) (*Session, error) {
	def, ok := catalog.History(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	return s.mutate(ctx, id, func(sess *Session) error {
		if !def.EligibleFor(sess.Sex) {
			return fmt.Errorf("%w: %q", ErrUnknownSection, key)
		}
		st, ok := sess.History[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSection, key)
		}
		if upd.Asked != nil {
			st = st.WithAsked(*upd.Asked)
		}
		if upd.Normal != nil {
			st = st.WithNormal(*upd.Normal, def.NegativeText)
		}
		if upd.Detail != nil {
			st = st.WithDetail(*upd.Detail)
		}
		sess.History[key] = st
		return nil
	})
}

// ExamUpdate carries one exam-section mutation, same field semantics as
// HistoryUpdate.
type ExamUpdate struct {
	Asked  *bool   `json:"asked"`
	Normal *bool   `json:"normal"`
	Detail *string `json:"detail"`
}

// UpdateExam applies a mutation to one physical-exam section.
func (s *Service) UpdateExam(ctx context.Context, id uuid.UUID, key catalog.ExamKey, upd ExamUpdate) (*Session, error) {
	def, ok := catalog.Exam(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	return s.mutate(ctx, id, func(sess *Session) error {
		st := sess.Exam[key]
		if upd.Asked != nil {
			st = st.WithAsked(*upd.Asked)
		}
		if upd.Normal != nil {
			st = st.WithNormal(*upd.Normal, def.NegativeText)
		}
		if upd.Detail != nil {
			st = st.WithDetail(*upd.Detail)
		}
		sess.Exam[key] = st
		return nil
	})
}

// SetSubfinding toggles one sub-finding flag on an exam section. Keys outside
// the section's catalog-declared set are rejected.
func (s *Service) SetSubfinding(ctx context.Context, id uuid.UUID, key catalog.ExamKey, subKey string, present bool) (*Session, error) {
	def, ok := catalog.Exam(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	if _, ok := def.Subfinding(subKey); !ok {
		return nil, fmt.Errorf("%w: %q on section %q", ErrUnknownSubfinding, subKey, key)
	}
	return s.mutate(ctx, id, func(sess *Session) error {
		sess.Exam[key] = sess.Exam[key].WithSubfinding(subKey, present)
		return nil
	})
}

// VitalsInput carries raw vitals values as the user typed them. Nil fields
// are left untouched. A set field replaces the stored value; blank or
// non-numeric text clears a numeric field rather than propagating NaN.
type VitalsInput struct {
	Temperature     *string `json:"temperature"`
	BloodPressure   *string `json:"blood_pressure"`
	Pulse           *string `json:"pulse"`
	RespiratoryRate *string `json:"respiratory_rate"`
	SpO2            *string `json:"spo2"`
	Weight          *string `json:"weight"`
	Height          *string `json:"height"`
	Waist           *string `json:"waist"`
}

// UpdateVitals applies a vitals mutation. Any change to weight or height
// recomputes the derived body-mass index synchronously.
func (s *Service) UpdateVitals(ctx context.Context, id uuid.UUID, in VitalsInput) (*Session, error) {
	return s.mutate(ctx, id, func(sess *Session) error {
		v := &sess.Vitals
		if in.Temperature != nil {
			v.Temperature = parseVital(*in.Temperature)
		}
		if in.BloodPressure != nil {
			v.BloodPressure = strings.TrimSpace(*in.BloodPressure)
		}
		if in.Pulse != nil {
			v.Pulse = parseVital(*in.Pulse)
		}
		if in.RespiratoryRate != nil {
			v.RespiratoryRate = parseVital(*in.RespiratoryRate)
		}
		if in.SpO2 != nil {
			v.SpO2 = parseVital(*in.SpO2)
		}
		if in.Waist != nil {
			v.Waist = parseVital(*in.Waist)
		}
		if in.Weight != nil || in.Height != nil {
			if in.Weight != nil {
				v.Weight = parseVital(*in.Weight)
			}
			if in.Height != nil {
				v.Height = parseVital(*in.Height)
			}
			v.recomputeBMI()
		}
		return nil
	})
}

// GenerateReport compiles the current snapshot into the clinical note. Pure
// read; the session is not mutated.
func (s *Service) GenerateReport(ctx context.Context, id uuid.UUID) (string, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.gen.Generate(sess), nil
}

// mutate runs one read-modify-write cycle against the store.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// parseVital turns user-typed text into a numeric vital. The decimal comma is
// accepted; anything unparsable reads as absent.
func parseVital(raw string) *float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
