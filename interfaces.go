package toybox

import "context"

// GenerationClient is the contract to the remote multimodal generation
// service. Implement this interface to add support for new providers.
//
// All three operations are single-attempt: the client performs no internal
// retry. GenerateImage propagates failures as errors; EnhancePrompt and
// Brainstorm convert failures into degraded results at this boundary so the
// session never has to treat them as errors.
type GenerationClient interface {
	// GenerateImage produces a stylized image from a prompt and an optional
	// input image. prompt and image must not both be empty; the session
	// enforces this before calling.
	GenerateImage(ctx context.Context, prompt string, image *InputImage, ratio AspectRatio) (*GenerationResult, error)

	// EnhancePrompt rewrites a prompt for better generation results.
	// On any failure it returns the original prompt with Degraded set.
	EnhancePrompt(ctx context.Context, prompt string) EnhanceResult

	// Brainstorm suggests concept ideas from the given context text and/or
	// image. On any failure it returns a fixed fallback with Degraded set.
	Brainstorm(ctx context.Context, contextText string, image *InputImage) BrainstormResult
}
