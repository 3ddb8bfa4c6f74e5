package session

import (
	"testing"

	"github.com/anamneza/anamneza/internal/catalog"
)

func TestHistoryState_AskedCascade(t *testing.T) {
	st := NewHistoryState()
	st = st.WithAsked(true)
	st = st.WithNormal(false, "neg")
	st = st.WithDetail("X")
	if st.Normal || st.Detail != "X" {
		t.Fatalf("setup failed: %+v", st)
	}

	st = st.WithAsked(false)
	if st.Asked {
		t.Error("asked should be false")
	}
	if !st.Normal {
		t.Error("unasking must force normal=true")
	}
	if st.Detail != "" {
		t.Errorf("unasking must clear detail, got %q", st.Detail)
	}
}

func TestHistoryState_NormalSeedsAndClears(t *testing.T) {
	st := NewHistoryState().WithAsked(true).WithNormal(false, "canned negative")
	if st.Detail != "canned negative" {
		t.Errorf("abnormal must seed detail with canned text, got %q", st.Detail)
	}
	st = st.WithNormal(true, "canned negative")
	if st.Detail != "" {
		t.Errorf("normal must clear detail, got %q", st.Detail)
	}
}

func TestHistoryState_RepeatedAbnormalKeepsEditedDetail(t *testing.T) {
	st := NewHistoryState().WithAsked(true).WithNormal(false, "canned negative")
	st = st.WithDetail("edited by the clinician")
	st = st.WithNormal(false, "canned negative")
	if st.Detail != "edited by the clinician" {
		t.Errorf("re-sending abnormal must not re-seed detail, got %q", st.Detail)
	}
}

func TestHistoryState_MutationsIgnoredWhenNotAsked(t *testing.T) {
	st := NewHistoryState()
	if got := st.WithNormal(false, "neg"); got != st {
		t.Error("normal transition on not-asked section must be a no-op")
	}
	if got := st.WithDetail("X"); got != st {
		t.Error("detail transition on not-asked section must be a no-op")
	}
}

func TestExamState_AskedCascadeClearsSubfindings(t *testing.T) {
	st := NewExamState().WithAsked(true).WithNormal(false, "neg")
	st = st.WithSubfinding("murmur", true)
	if !st.Subfindings["murmur"] {
		t.Fatal("setup failed")
	}

	st = st.WithAsked(false)
	if st.Asked || !st.Normal || st.Detail != "" || st.Subfindings != nil {
		t.Errorf("unasking must fully reset state, got %+v", st)
	}
}

func TestExamState_NormalClearsSubfindings(t *testing.T) {
	st := NewExamState().WithAsked(true).WithNormal(false, "neg")
	st = st.WithSubfinding("crackles", true)
	st = st.WithNormal(true, "neg")
	if st.Detail != "" || st.Subfindings != nil {
		t.Errorf("normal must clear detail and subfindings, got %+v", st)
	}
}

func TestExamState_RepeatedAbnormalKeepsDetailAndSubfindings(t *testing.T) {
	st := NewExamState().WithAsked(true).WithNormal(false, "neg")
	st = st.WithDetail("edited finding")
	st = st.WithSubfinding("tenderness", true)
	st = st.WithNormal(false, "neg")
	if st.Detail != "edited finding" {
		t.Errorf("re-sending abnormal must not re-seed detail, got %q", st.Detail)
	}
	if !st.Subfindings["tenderness"] {
		t.Error("re-sending abnormal must not drop subfindings")
	}
}

func TestExamState_SubfindingCopyOnWrite(t *testing.T) {
	a := NewExamState().WithAsked(true).WithNormal(false, "neg")
	a = a.WithSubfinding("jvd", true)
	b := a.WithSubfinding("meningealSigns", true)
	if len(a.Subfindings) != 1 {
		t.Error("prior snapshot mutated by later transition")
	}
	if len(b.Subfindings) != 2 {
		t.Errorf("expected 2 flags, got %d", len(b.Subfindings))
	}
	b = b.WithSubfinding("jvd", false).WithSubfinding("meningealSigns", false)
	if b.Subfindings != nil {
		t.Error("clearing all flags should leave a nil map")
	}
}

func TestExamState_SubfindingIgnoredWhenNormal(t *testing.T) {
	st := NewExamState().WithAsked(true)
	if got := st.WithSubfinding("murmur", true); got.Subfindings != nil {
		t.Error("subfinding on a normal section must be a no-op")
	}
}

func TestNewSessionEligibility(t *testing.T) {
	male := New(catalog.SexMale)
	if _, ok := male.History[catalog.Breasts]; ok {
		t.Error("male session must not carry the breasts section")
	}
	if _, ok := male.History[catalog.GenitalsMale]; !ok {
		t.Error("male session must carry genitalsMale")
	}

	female := New(catalog.SexFemale)
	if _, ok := female.History[catalog.GenitalsMale]; ok {
		t.Error("female session must not carry genitalsMale")
	}
	if len(female.Exam) != len(catalog.ExamSections) {
		t.Errorf("exam sections = %d, want %d", len(female.Exam), len(catalog.ExamSections))
	}
	for key, st := range female.History {
		if st.Asked || !st.Normal || st.Detail != "" {
			t.Errorf("section %q not in initial state: %+v", key, st)
		}
	}
}

func TestResetObservationsKeepsIdentity(t *testing.T) {
	s := New(catalog.SexFemale)
	s.Patient = Identity{Name: "Ana", Surname: "Novak"}
	s.History[catalog.MainComplaint] = s.History[catalog.MainComplaint].WithAsked(true)
	w := 70.0
	s.Vitals.Weight = &w

	s.Sex = catalog.SexMale
	s.ResetObservations()

	if s.Patient.Name != "Ana" {
		t.Error("identity must survive a reset")
	}
	if s.History[catalog.MainComplaint].Asked {
		t.Error("history state must be reset")
	}
	if s.Vitals.Weight != nil {
		t.Error("vitals must be reset")
	}
	if _, ok := s.History[catalog.GenitalsMale]; !ok {
		t.Error("reset must rebuild eligibility for the new sex")
	}
}

func TestCloneIsolation(t *testing.T) {
	s := New(catalog.SexFemale)
	s.Exam[catalog.ExamHeart] = s.Exam[catalog.ExamHeart].
		WithAsked(true).WithNormal(false, "neg").WithSubfinding("murmur", true)

	c := s.Clone()
	c.History[catalog.MainComplaint] = c.History[catalog.MainComplaint].WithAsked(true)
	c.Exam[catalog.ExamHeart] = c.Exam[catalog.ExamHeart].WithSubfinding("arrhythmia", true)

	if s.History[catalog.MainComplaint].Asked {
		t.Error("clone mutation leaked into original history")
	}
	if len(s.Exam[catalog.ExamHeart].Subfindings) != 1 {
		t.Error("clone mutation leaked into original subfindings")
	}
}

func TestIdentityEmpty(t *testing.T) {
	if !(Identity{}).Empty() {
		t.Error("zero identity should be empty")
	}
	if (Identity{Occupation: "učitelj"}).Empty() {
		t.Error("identity with occupation should not be empty")
	}
}
