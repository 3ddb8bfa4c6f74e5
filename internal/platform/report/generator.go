// Package report compiles a questionnaire session into the formatted
// free-text clinical note. Compilation is a pure function of the session
// snapshot and the section catalog: it never mutates state and never fails,
// missing data simply yields fewer blocks.
package report

import (
	"strconv"
	"strings"

	"github.com/anamneza/anamneza/internal/catalog"
	"github.com/anamneza/anamneza/internal/domain/session"
)

// FallbackFindingText is emitted for an abnormal exam section whose merge
// produced no text at all.
const FallbackFindingText = "Prisotna odstopanja."

// Generator compiles sessions into clinical notes. It holds no state and is
// safe for concurrent use.
type Generator struct{}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces the full note: identity line, history blocks in the
// canonical order (with review-of-systems folded under the current illness),
// the vitals line and the exam blocks, joined by blank lines. Blocks with
// nothing to say contribute nothing.
func (g *Generator) Generate(s *session.Session) string {
	var parts []string

	if line := identityLine(s.Patient); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, historyBlocks(s)...)
	if line := vitalsLine(s.Vitals); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, examBlocks(s)...)

	return strings.Join(parts, "\n\n")
}

func identityLine(p session.Identity) string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString("Osnovni podatki: ")
	b.WriteString(p.Name)
	b.WriteString(" ")
	b.WriteString(p.Surname)
	if p.Age != "" {
		b.WriteString(", ")
		b.WriteString(p.Age)
		b.WriteString(" let")
	}
	if p.Occupation != "" {
		b.WriteString(", ")
		b.WriteString(p.Occupation)
	}
	b.WriteString(".")
	return Normalize(b.String())
}

func historyBlocks(s *session.Session) []string {
	var blocks []string
	for _, key := range catalog.HistoryReportOrder {
		def, ok := catalog.History(key)
		if !ok || !def.EligibleFor(s.Sex) {
			continue
		}
		st, ok := s.History[key]
		if !ok || !st.Asked {
			continue
		}
		text := sectionText(def, st)
		if key == catalog.CurrentIllness {
			text = joinSentences(text, reviewOfSystemsText(s))
		}
		text = Normalize(text)
		if text == "" {
			continue
		}
		blocks = append(blocks, def.ReportLabel+": "+text)
	}
	return blocks
}

// reviewOfSystemsText merges every eligible, asked review-of-systems section
// into one narrative fragment, in catalog-declared order. These sections are
// only ever reported here, under the current-illness heading.
func reviewOfSystemsText(s *session.Session) string {
	var parts []string
	for _, def := range catalog.ReviewOfSystems(s.Sex) {
		st, ok := s.History[def.Key]
		if !ok || !st.Asked {
			continue
		}
		if t := sectionText(def, st); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ". ")
}

func sectionText(def *catalog.HistorySection, st session.HistoryState) string {
	if st.Normal {
		return def.NegativeText
	}
	return st.Detail
}

func vitalsLine(v session.Vitals) string {
	var vs []string
	if v.Temperature != nil {
		vs = append(vs, "TT "+num(*v.Temperature)+"°C")
	}
	if v.BloodPressure != "" {
		vs = append(vs, "RR "+v.BloodPressure+" mmHg")
	}
	if v.Pulse != nil {
		vs = append(vs, "pulz "+num(*v.Pulse)+"/min")
	}
	if v.RespiratoryRate != nil {
		vs = append(vs, "fr. "+num(*v.RespiratoryRate)+"/min")
	}
	if v.SpO2 != nil {
		vs = append(vs, "SpO2 "+num(*v.SpO2)+"%")
	}
	if v.Weight != nil {
		vs = append(vs, "teža "+num(*v.Weight)+" kg")
	}
	if v.Height != nil {
		vs = append(vs, "višina "+num(*v.Height)+" cm")
	}
	if v.BMI != nil {
		vs = append(vs, "ITM "+num(*v.BMI)+" kg/m²")
	}
	if v.Waist != nil {
		vs = append(vs, "obseg pasu "+num(*v.Waist)+" cm")
	}
	if len(vs) == 0 {
		return ""
	}
	return "Vitalne funkcije: " + strings.Join(vs, ", ") + "."
}

func examBlocks(s *session.Session) []string {
	var blocks []string
	for _, key := range catalog.ExamReportOrder {
		def, ok := catalog.Exam(key)
		if !ok {
			continue
		}
		st, ok := s.Exam[key]
		if !ok || !st.Asked {
			continue
		}
		var text string
		if st.Normal {
			text = def.NegativeText
		} else {
			text = mergeFindings(def, st)
		}
		text = Normalize(text)
		if text == "" {
			continue
		}
		blocks = append(blocks, def.ReportLabel+": "+text)
	}
	return blocks
}

// mergeFindings composes an abnormal exam section: the free detail first,
// then the canned phrase of every checked sub-finding in catalog-declared
// order. A piece equal to the section's canned negative text is skipped so
// the seeded template is never re-inserted as an abnormal finding.
func mergeFindings(def *catalog.ExamSection, st session.ExamState) string {
	var pieces []string
	keep := func(p string) bool {
		return strings.TrimSpace(p) != "" && p != def.NegativeText
	}
	if keep(st.Detail) {
		pieces = append(pieces, st.Detail)
	}
	for i := range def.Subfindings {
		sf := &def.Subfindings[i]
		if st.Subfindings[sf.Key] && keep(sf.ReportText) {
			pieces = append(pieces, sf.ReportText)
		}
	}
	if len(pieces) == 0 {
		return FallbackFindingText
	}
	return strings.Join(pieces, ". ")
}

func joinSentences(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ". ")
}

// num formats a vital without trailing zeros (36.6 → "36.6", 80 → "80").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
