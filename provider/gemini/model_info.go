package gemini

import "github.com/mhpenta/toybox"

// API model names used by this provider.
const (
	// DefaultImageModel is Gemini 2.5 Flash Image (nano banana), the
	// multimodal model that renders the toy-box images.
	DefaultImageModel = "gemini-2.5-flash-image"

	// DefaultTextModel handles the assistive text calls: prompt
	// enhancement and idea brainstorming.
	DefaultTextModel = "gemini-2.5-flash"
)

// ModelInfo describes one of the models this provider calls.
type ModelInfo struct {
	// Name is the API model name.
	Name string

	// Purpose is what the client uses the model for.
	Purpose string

	// SupportedAspectRatios lists the output shapes a model can render.
	// Empty for text-only models.
	SupportedAspectRatios []toybox.AspectRatio
}

// Models returns the models this provider calls, image model first.
func Models() []ModelInfo {
	return []ModelInfo{
		{
			Name:                  DefaultImageModel,
			Purpose:               "image generation",
			SupportedAspectRatios: toybox.AspectRatios(),
		},
		{
			Name:    DefaultTextModel,
			Purpose: "prompt enhancement and brainstorming",
		},
	}
}
