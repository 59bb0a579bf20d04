package findings

// Severity of a critical finding.
type Severity string

const (
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Confidence of a differential diagnosis candidate.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Pattern is a single critical-finding keyword with its severity and the
// recommended clinical action.
type Pattern struct {
	Keyword  string   `json:"keyword"`
	Severity Severity `json:"severity"`
	Action   string   `json:"action"`
}

// PatternCategory groups patterns by body region. Declaration order is
// significant: match results follow it.
type PatternCategory struct {
	Region   string    `json:"region"`
	Patterns []Pattern `json:"patterns"`
}

// CriticalPatterns is the compiled critical-findings database.
var CriticalPatterns = []PatternCategory{
	{
		Region: "Brain",
		Patterns: []Pattern{
			{"acute infarct", SeverityHigh, "Immediate neurology consult"},
			{"large mass", SeverityHigh, "Neurosurgery referral"},
			{"hemorrhage", SeverityCritical, "STAT neurosurgery"},
			{"herniation", SeverityCritical, "Emergency neurosurgery"},
			{"abscess", SeverityHigh, "Infectious disease consult"},
			{"hydrocephalus", SeverityHigh, "Neurosurgery consult"},
			{"child abuse", SeverityCritical, "Legal/Child protection"},
			{"aneurysm rupture", SeverityCritical, "Neurointerventional STAT"},
		},
	},
	{
		Region: "Spine",
		Patterns: []Pattern{
			{"cord compression", SeverityCritical, "Emergency neurosurgery"},
			{"fracture dislocation", SeverityCritical, "Spine surgery STAT"},
			{"epidural abscess", SeverityHigh, "Infectious disease + surgery"},
			{"cauda equina", SeverityCritical, "Emergency decompression"},
		},
	},
	{
		Region: "Chest",
		Patterns: []Pattern{
			{"aortic dissection", SeverityCritical, "Cardiothoracic surgery STAT"},
			{"pneumothorax", SeverityHigh, "Chest tube assessment"},
			{"pulmonary embolism", SeverityHigh, "Anticoagulation/Vascular"},
			{"mediastinal mass", SeverityMedium, "Oncology referral"},
		},
	},
	{
		Region: "Abdomen",
		Patterns: []Pattern{
			{"bowel perforation", SeverityCritical, "General surgery STAT"},
			{"aortic aneurysm", SeverityHigh, "Vascular surgery"},
			{"appendicitis", SeverityHigh, "Surgical consult"},
			{"obstructive uropathy", SeverityHigh, "Urology consult"},
		},
	},
}

// Differential is one diagnosis candidate within a differential group.
type Differential struct {
	Diagnosis  string     `json:"diagnosis"`
	Confidence Confidence `json:"confidence"`
	Features   string     `json:"features"`
	Modality   string     `json:"modality"`
	Urgent     bool       `json:"urgent"`
}

// DifferentialGroup is a set of candidates fired together by any of its
// trigger keywords.
type DifferentialGroup struct {
	Name     string         `json:"name"`
	Triggers []string       `json:"triggers"`
	Entries  []Differential `json:"entries"`
}

// DifferentialGroups is the compiled differential-diagnosis database.
// Triggers are the words of each group name; matching any one fires the
// whole group.
var DifferentialGroups = []DifferentialGroup{
	{
		Name:     "brain_lesion_enhancing",
		Triggers: []string{"brain", "lesion", "enhancing"},
		Entries: []Differential{
			{"Meningioma", ConfidenceHigh, "Dural-based, homogeneous enhancement, dural tail", "MRI", false},
			{"Metastasis", ConfidenceHigh, "Multiple, at gray-white junction, edema", "MRI", true},
			{"Glioblastoma", ConfidenceMedium, "Irregular rim enhancement, central necrosis", "MRI", true},
			{"Lymphoma", ConfidenceMedium, "Periventricular, homogeneous enhancement", "MRI", true},
			{"Abscess", ConfidenceLow, "Ring enhancement, restricted diffusion", "MRI", true},
		},
	},
	{
		Name:     "white_matter_hyperintensities",
		Triggers: []string{"white", "matter", "hyperintensities"},
		Entries: []Differential{
			{"Microvascular ischemia", ConfidenceHigh, "Periventricular, punctate, age-appropriate", "MRI", false},
			{"Multiple Sclerosis", ConfidenceMedium, "Ovoid, perivenular, Dawson's fingers", "MRI", false},
			{"Vasculitis", ConfidenceLow, "Multiple territories, enhancement", "MRI", true},
			{"CADASIL", ConfidenceLow, "Anterior temporal lobe, external capsule", "MRI", false},
		},
	},
	{
		Name:     "spinal_cord_lesion",
		Triggers: []string{"spinal", "cord", "lesion"},
		Entries: []Differential{
			{"Multiple Sclerosis", ConfidenceHigh, "Short segment, peripheral", "MRI", false},
			{"NMO spectrum", ConfidenceMedium, "Long segment, central", "MRI", false},
			{"Infarction", ConfidenceMedium, "Acute, anterior cord", "MRI", true},
			{"Tumor", ConfidenceLow, "Expansile, enhancement", "MRI", false},
		},
	},
}

// NormalValues holds reference measurements per body region, keyed by
// structure in display order.
var NormalValues = map[string][]NormalValue{
	"Brain": {
		{"Lateral ventricles (frontal horn)", "<10 mm"},
		{"Third ventricle", "<6 mm"},
		{"Fourth ventricle", "<12 mm"},
		{"Sulcal width", "<3 mm"},
		{"Pineal gland", "<10 mm"},
		{"Pituitary height", "≤8 mm (♀), ≤10 mm (♂)"},
	},
	"Spine": {
		{"Spinal canal AP diameter (cervical)", "≥12 mm"},
		{"Spinal canal AP diameter (lumbar)", "≥15 mm"},
		{"Thecal sac (lumbar)", "≥12 mm"},
		{"Cord compression", "None"},
	},
	"Chest": {
		{"Aortic diameter (ascending)", "<40 mm"},
		{"Aortic diameter (descending)", "<30 mm"},
		{"PA diameter", "<29 mm"},
		{"Cardiothoracic ratio", "<0.5"},
		{"Lymph node (short axis)", "<10 mm"},
	},
}

// NormalValue is one structure/reference pair.
type NormalValue struct {
	Structure string `json:"structure"`
	Reference string `json:"reference"`
}
