// Package catalog holds the static definitions of every history and
// physical-exam section the questionnaire knows about: display labels, report
// headings, canned negative-finding sentences, sex restrictions, workflow
// groups and exam sub-findings. The data is compiled in and immutable; all
// other packages consume it read-only.
package catalog

// Sex is the biological sex of the patient, used to filter sex-restricted
// history sections out of both the workflow and the report.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// Valid reports whether s is one of the two supported values.
func (s Sex) Valid() bool {
	return s == SexFemale || s == SexMale
}

// Group partitions history sections into the three workflow buckets. Sections
// in GroupROS are folded into the current-illness narrative at report time and
// are never emitted standalone.
type Group string

const (
	GroupMainPreROS  Group = "main_pre_ros"
	GroupROS         Group = "ros"
	GroupMainPostROS Group = "main_post_ros"
)

// HistoryKey identifies one history (anamnesis) section.
type HistoryKey string

const (
	MainComplaint      HistoryKey = "mainComplaint"
	CurrentIllness     HistoryKey = "currentIllness"
	General            HistoryKey = "general"
	Endocrine          HistoryKey = "endocrine"
	HeadNeck           HistoryKey = "headNeck"
	Cardiovascular     HistoryKey = "cardiovascular"
	Respiratory        HistoryKey = "respiratory"
	Breasts            HistoryKey = "breasts"
	Gastrointestinal   HistoryKey = "gastrointestinal"
	Hematopoietic      HistoryKey = "hematopoietic"
	Urogenital         HistoryKey = "urogenital"
	GenitalsMale       HistoryKey = "genitalsMale"
	GenitalsFemale     HistoryKey = "genitalsFemale"
	Musculoskeletal    HistoryKey = "musculoskeletal"
	Neurological       HistoryKey = "neurological"
	Skin               HistoryKey = "skin"
	ChildhoodIllnesses HistoryKey = "childhoodIllnesses"
	PastIllnesses      HistoryKey = "pastIllnesses"
	FamilyHistory      HistoryKey = "familyHistory"
	Medications        HistoryKey = "medications"
	Vaccinations       HistoryKey = "vaccinations"
	Allergies          HistoryKey = "allergies"
	Addictions         HistoryKey = "addictions"
	SocialHistory      HistoryKey = "socialHistory"
)

// ExamKey identifies one physical-exam (status) section.
type ExamKey string

const (
	ExamGeneral ExamKey = "general"
	ExamHead    ExamKey = "head"
	ExamNeck    ExamKey = "neck"
	ExamChest   ExamKey = "chest"
	ExamHeart   ExamKey = "heart"
	ExamAbdomen ExamKey = "abdomen"
	ExamLimbs   ExamKey = "limbs"
)

// Subfinding is one specific abnormal observation within an exam section,
// toggled independently, with its own canned report phrase.
type Subfinding struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	ReportText string `json:"report_text"`
}

// HistorySection describes one history section. A zero Sex means the section
// applies to both sexes.
type HistorySection struct {
	Key          HistoryKey `json:"key"`
	Label        string     `json:"label"`
	ReportLabel  string     `json:"report_label"`
	NegativeText string     `json:"negative_text"`
	Sex          Sex        `json:"sex,omitempty"`
	Group        Group      `json:"group"`
}

// EligibleFor reports whether the section participates in the workflow and
// report for a patient of the given sex.
func (h *HistorySection) EligibleFor(sex Sex) bool {
	return h.Sex == "" || h.Sex == sex
}

// ExamSection describes one physical-exam section. Subfindings preserve
// declaration order, which is also their report merge order.
type ExamSection struct {
	Key          ExamKey      `json:"key"`
	Label        string       `json:"label"`
	ReportLabel  string       `json:"report_label"`
	NegativeText string       `json:"negative_text"`
	Subfindings  []Subfinding `json:"subfindings,omitempty"`
}

// Subfinding returns the sub-finding definition for key, if declared.
func (e *ExamSection) Subfinding(key string) (*Subfinding, bool) {
	for i := range e.Subfindings {
		if e.Subfindings[i].Key == key {
			return &e.Subfindings[i], true
		}
	}
	return nil, false
}

// HistoryReportOrder is the canonical, hard-coded report order for the
// history stage. It is narrower than the catalog: review-of-systems sections
// are folded under currentIllness and never listed here.
var HistoryReportOrder = []HistoryKey{
	MainComplaint,
	FamilyHistory,
	ChildhoodIllnesses,
	PastIllnesses,
	CurrentIllness,
	Medications,
	Vaccinations,
	Allergies,
	Addictions,
	SocialHistory,
}

// ExamReportOrder is the canonical report order for the exam stage.
var ExamReportOrder = []ExamKey{
	ExamGeneral,
	ExamHead,
	ExamNeck,
	ExamChest,
	ExamHeart,
	ExamAbdomen,
	ExamLimbs,
}

var historyByKey = make(map[HistoryKey]*HistorySection, len(HistorySections))
var examByKey = make(map[ExamKey]*ExamSection, len(ExamSections))

func init() {
	for i := range HistorySections {
		historyByKey[HistorySections[i].Key] = &HistorySections[i]
	}
	for i := range ExamSections {
		examByKey[ExamSections[i].Key] = &ExamSections[i]
	}
}

// History returns the history section definition for key.
func History(key HistoryKey) (*HistorySection, bool) {
	h, ok := historyByKey[key]
	return h, ok
}

// Exam returns the exam section definition for key.
func Exam(key ExamKey) (*ExamSection, bool) {
	e, ok := examByKey[key]
	return e, ok
}

// EligibleHistory returns every history section eligible for the given sex,
// in declaration order.
func EligibleHistory(sex Sex) []*HistorySection {
	var out []*HistorySection
	for i := range HistorySections {
		if HistorySections[i].EligibleFor(sex) {
			out = append(out, &HistorySections[i])
		}
	}
	return out
}

// ReviewOfSystems returns the review-of-systems sections eligible for the
// given sex, in declaration order.
func ReviewOfSystems(sex Sex) []*HistorySection {
	var out []*HistorySection
	for i := range HistorySections {
		s := &HistorySections[i]
		if s.Group == GroupROS && s.EligibleFor(sex) {
			out = append(out, s)
		}
	}
	return out
}
