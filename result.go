package toybox

// GenerationResult holds the outcome of a single image generation call.
type GenerationResult struct {
	// ImageURL is the generated image as a renderable data URL.
	// Empty when the service returned only text.
	ImageURL string

	// Text contains any text response from the model.
	Text string
}

// EnhanceResult is the two-outcome result of a prompt enhancement call.
// Enhancement never fails outward: on any failure the original prompt is
// returned with Degraded set.
type EnhanceResult struct {
	// Prompt is the improved prompt, or the original when degraded.
	Prompt string

	// Degraded reports that the service call failed or returned nothing
	// and Prompt carries the fallback value.
	Degraded bool
}

// BrainstormResult is the two-outcome result of a brainstorm call.
// Brainstorming never fails outward: on any failure a fixed fallback
// string is returned with Degraded set.
type BrainstormResult struct {
	// Ideas is the idea list text, or a fixed fallback when degraded.
	Ideas string

	// Degraded reports that the service call failed or returned nothing.
	Degraded bool
}
