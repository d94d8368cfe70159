package toybox

import (
	"time"
)

// AspectRatio represents the output shape requested from the generation service.
type AspectRatio string

const (
	AspectRatioSquare    AspectRatio = "1:1"
	AspectRatioPortrait  AspectRatio = "3:4"
	AspectRatioLandscape AspectRatio = "4:3"
	AspectRatioWide      AspectRatio = "16:9"
	AspectRatioTall      AspectRatio = "9:16"
)

// aspectRatioCycle is the fixed order the ratio control steps through.
var aspectRatioCycle = []AspectRatio{
	AspectRatioSquare,
	AspectRatioPortrait,
	AspectRatioLandscape,
	AspectRatioWide,
	AspectRatioTall,
}

// Next returns the ratio that follows a in the fixed cycle, wrapping
// after the last entry. Unknown values restart the cycle at the first entry.
func (a AspectRatio) Next() AspectRatio {
	for i, r := range aspectRatioCycle {
		if r == a {
			return aspectRatioCycle[(i+1)%len(aspectRatioCycle)]
		}
	}
	return aspectRatioCycle[0]
}

// AspectRatios returns the supported ratios in cycle order.
func AspectRatios() []AspectRatio {
	ratios := make([]AspectRatio, len(aspectRatioCycle))
	copy(ratios, aspectRatioCycle)
	return ratios
}

// String returns the string representation for API calls.
func (a AspectRatio) String() string {
	return string(a)
}

// Phase identifies which operation, if any, the session is currently
// suspended in. At most one operation is in flight at a time; illegal
// combinations (e.g. brainstorming while generating) are unrepresentable.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGenerating
	PhaseBrainstorming
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "generating"
	case PhaseBrainstorming:
		return "brainstorming"
	default:
		return "idle"
	}
}

// InputImage represents an image input for generation or brainstorming.
type InputImage struct {
	// Data is the raw image bytes
	Data []byte

	// MIMEType of the image (e.g., "image/jpeg", "image/png")
	MIMEType string
}

// HistoryItem is an immutable record of one past successful generation.
type HistoryItem struct {
	// ID uniquely identifies the item, derived from the creation instant.
	ID string

	// ImageURL is the generated image as a renderable data URL.
	ImageURL string

	// Prompt is the text actually sent to the service, after any enhancement.
	Prompt string

	// Timestamp is the creation instant.
	Timestamp time.Time
}

// Snapshot is an immutable copy of the session state for the presentation
// layer. The contained history slice is a copy and safe to retain.
type Snapshot struct {
	// HasInputImage reports whether a source image is attached.
	HasInputImage bool

	// InputMIMEType is meaningful only when HasInputImage is true.
	InputMIMEType string

	// UserPrompt is the current prompt text, after any enhancement.
	UserPrompt string

	// GeneratedImage is the most recent result as a data URL, or empty.
	GeneratedImage string

	// AutoEnhance reports whether the prompt is rewritten before generation.
	AutoEnhance bool

	// AspectRatio is the currently selected output shape.
	AspectRatio AspectRatio

	// Phase is the in-flight operation, or PhaseIdle.
	Phase Phase

	// Enhancing is true only during the enhancement span of a generate call.
	Enhancing bool

	// BrainstormIdeas is the last brainstorm result, or empty.
	BrainstormIdeas string

	// ErrorMessage is the user-facing error tied to the generation flow,
	// or empty when there is none.
	ErrorMessage string

	// History holds past successful generations, most recent first.
	History []HistoryItem
}
