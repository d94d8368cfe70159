package toybox

import (
	"context"
)

// MockGenerationClient is a mock implementation of GenerationClient.
// Call counters and last-seen arguments let tests assert that a network
// call did or did not happen.
type MockGenerationClient struct {
	GenerateImageFunc func(ctx context.Context, prompt string, image *InputImage, ratio AspectRatio) (*GenerationResult, error)
	EnhancePromptFunc func(ctx context.Context, prompt string) EnhanceResult
	BrainstormFunc    func(ctx context.Context, contextText string, image *InputImage) BrainstormResult

	GenerateCalls   int
	EnhanceCalls    int
	BrainstormCalls int

	LastPrompt string
	LastRatio  AspectRatio
	LastImage  *InputImage
}

func (m *MockGenerationClient) GenerateImage(ctx context.Context, prompt string, image *InputImage, ratio AspectRatio) (*GenerationResult, error) {
	m.GenerateCalls++
	m.LastPrompt = prompt
	m.LastRatio = ratio
	m.LastImage = image
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, prompt, image, ratio)
	}
	return &GenerationResult{ImageURL: "data:image/png;base64,AAAA"}, nil
}

func (m *MockGenerationClient) EnhancePrompt(ctx context.Context, prompt string) EnhanceResult {
	m.EnhanceCalls++
	if m.EnhancePromptFunc != nil {
		return m.EnhancePromptFunc(ctx, prompt)
	}
	return EnhanceResult{Prompt: prompt}
}

func (m *MockGenerationClient) Brainstorm(ctx context.Context, contextText string, image *InputImage) BrainstormResult {
	m.BrainstormCalls++
	if m.BrainstormFunc != nil {
		return m.BrainstormFunc(ctx, contextText, image)
	}
	return BrainstormResult{Ideas: "1. Idea\n2. Idea\n3. Idea"}
}
