package report

import "strings"

// GenerateSystemPrompt frames the text-generation collaborator as a
// radiology report writer.
const GenerateSystemPrompt = "You are an experienced radiologist drafting formal diagnostic reports. " +
	"Write in precise clinical language. Output plain text only."

// BuildPrompt constructs the generation prompt from technique context and
// the clinician's draft findings. The collaborator must answer with
// TECHNIQUE, FINDINGS, and IMPRESSION sections.
func BuildPrompt(technique TechniqueInfo, draft string) string {
	var b strings.Builder
	b.WriteString("Compose a structured radiology report from the findings below.\n\n")
	if technique.Modality != "" {
		b.WriteString("Modality: " + technique.Modality + "\n")
	}
	if technique.Contrast != "" {
		b.WriteString("Contrast: " + technique.Contrast + "\n")
	}
	if technique.Protocol != "" {
		b.WriteString("Protocol: " + technique.Protocol + "\n")
	}
	b.WriteString("\nDraft findings:\n")
	b.WriteString(draft)
	b.WriteString("\n\nThe report must contain exactly three sections, each introduced by an " +
		"ALL-CAPS heading ending in a colon: TECHNIQUE, FINDINGS, IMPRESSION. " +
		"Expand the draft findings into complete sentences; do not invent findings " +
		"that are not supported by the draft.")
	return b.String()
}
