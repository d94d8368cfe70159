package toybox

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// User-facing messages surfaced through Snapshot.ErrorMessage.
const (
	msgNoInput      = "Please attach an image or enter a prompt."
	msgInvalidImage = "Please upload a valid image file."
	msgNoImage      = "No image generated. Try a different prompt."
)

// Session is the request orchestrator. It owns the mutable state of one
// interactive generation session: the current inputs, the in-flight phase,
// the last result and error, and the bounded history of past generations.
//
// All entry points serialize on an internal mutex, which is released around
// network calls so Snapshot stays readable while an operation is suspended.
// Generate and Brainstorm reject overlapping invocations with ErrBusy
// rather than queueing them; the presentation layer is expected to disable
// the corresponding controls while the phase is not PhaseIdle.
type Session struct {
	id     string
	client GenerationClient
	logger *slog.Logger
	now    func() time.Time

	mu              sync.Mutex
	inputImage      *InputImage
	userPrompt      string
	generatedImage  string
	autoEnhance     bool
	aspectRatio     AspectRatio
	phase           Phase
	enhancing       bool
	brainstormIdeas string
	errorMsg        string
	history         *History
}

// NewSession creates a session bound to a generation client.
func NewSession(client GenerationClient, opts ...SessionOption) *Session {
	s := &Session{
		id:          uuid.NewString(),
		client:      client,
		logger:      slog.Default(),
		now:         time.Now,
		aspectRatio: AspectRatioSquare,
		history:     NewHistory(DefaultHistorySize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AttachImage validates and attaches a source image. A new source image
// invalidates any prior output, so the generated image is cleared along
// with the error. On an invalid payload the error message is set and all
// other fields are left untouched.
func (s *Session) AttachImage(data []byte, mimeType string) error {
	img := InputImage{Data: data, MIMEType: mimeType}
	if err := ValidateImagePayload(img); err != nil {
		s.mu.Lock()
		s.errorMsg = msgInvalidImage
		s.mu.Unlock()

		s.logger.Warn("rejected input image",
			"session_id", s.id,
			"mime_type", mimeType,
			"error", err.Error(),
		)
		return wrapInvalidImage(err)
	}

	s.mu.Lock()
	s.inputImage = &img
	s.errorMsg = ""
	s.generatedImage = ""
	s.mu.Unlock()

	s.logger.Debug("input image attached",
		"session_id", s.id,
		"mime_type", mimeType,
		"size", len(data),
	)
	return nil
}

// ClearInput detaches the source image. The generated image, history and
// error state are untouched.
func (s *Session) ClearInput() {
	s.mu.Lock()
	s.inputImage = nil
	s.mu.Unlock()
}

// SetPrompt replaces the prompt text.
func (s *Session) SetPrompt(text string) {
	s.mu.Lock()
	s.userPrompt = text
	s.mu.Unlock()
}

// SetAutoEnhance enables or disables prompt enhancement before generation.
func (s *Session) SetAutoEnhance(enabled bool) {
	s.mu.Lock()
	s.autoEnhance = enabled
	s.mu.Unlock()
}

// ToggleAutoEnhance flips the auto-enhance setting and returns the new value.
func (s *Session) ToggleAutoEnhance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoEnhance = !s.autoEnhance
	return s.autoEnhance
}

// CycleAspectRatio advances to the next ratio in the fixed cycle and
// returns the new value.
func (s *Session) CycleAspectRatio() AspectRatio {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aspectRatio = s.aspectRatio.Next()
	return s.aspectRatio
}

// Generate runs the primary sequenced operation: optional prompt
// enhancement followed by image generation. On success the result is
// recorded in the history; on failure the error message is set. The
// in-flight phase is cleared unconditionally in every outcome.
//
// Enhancement always fully completes before generation begins; the two
// calls are never concurrent within one invocation. A degraded enhancement
// falls back to the original prompt and never blocks generation.
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseIdle {
		s.mu.Unlock()
		return ErrBusy
	}
	if s.inputImage == nil && strings.TrimSpace(s.userPrompt) == "" {
		s.errorMsg = msgNoInput
		s.mu.Unlock()
		return ErrNoInput
	}
	s.phase = PhaseGenerating
	s.errorMsg = ""
	s.generatedImage = ""
	prompt := s.userPrompt
	image := s.inputImage
	autoEnhance := s.autoEnhance
	ratio := s.aspectRatio
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.phase = PhaseIdle
		s.enhancing = false
		s.mu.Unlock()
	}()

	start := s.now()
	s.logger.Debug("starting generation",
		"session_id", s.id,
		"prompt_length", len(prompt),
		"has_image", image != nil,
		"aspect_ratio", ratio.String(),
		"auto_enhance", autoEnhance,
	)

	if autoEnhance && strings.TrimSpace(prompt) != "" {
		s.mu.Lock()
		s.enhancing = true
		s.mu.Unlock()

		enhanced := s.client.EnhancePrompt(ctx, prompt)
		if enhanced.Degraded {
			s.logger.Warn("enhancement degraded, using original prompt",
				"session_id", s.id,
			)
		}
		prompt = enhanced.Prompt

		s.mu.Lock()
		s.userPrompt = prompt
		s.enhancing = false
		s.mu.Unlock()
	}

	result, err := s.client.GenerateImage(ctx, prompt, image, ratio)
	duration := s.now().Sub(start)

	if err != nil {
		s.mu.Lock()
		s.errorMsg = UserMessage(err)
		s.mu.Unlock()

		s.logger.Error("generation failed",
			"session_id", s.id,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return err
	}

	if result.ImageURL == "" {
		s.mu.Lock()
		s.errorMsg = msgNoImage
		s.mu.Unlock()

		s.logger.Warn("generation returned no image",
			"session_id", s.id,
			"duration_ms", duration.Milliseconds(),
		)
		return ErrNoImageProduced
	}

	created := s.now()
	item := HistoryItem{
		ID:        strconv.FormatInt(created.UnixMilli(), 10),
		ImageURL:  result.ImageURL,
		Prompt:    prompt,
		Timestamp: created,
	}

	s.mu.Lock()
	s.generatedImage = result.ImageURL
	s.history.Insert(item)
	historyLen := s.history.Len()
	s.mu.Unlock()

	s.logger.Info("generation completed",
		"session_id", s.id,
		"duration_ms", duration.Milliseconds(),
		"history_len", historyLen,
	)
	return nil
}

// Brainstorm asks the service for concept ideas based on the current
// prompt and input image. The previous ideas are cleared at the start of
// the call. A degraded result is still displayed; the generation error
// field is never touched by brainstorming.
func (s *Session) Brainstorm(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != PhaseIdle {
		s.mu.Unlock()
		return ErrBusy
	}
	s.phase = PhaseBrainstorming
	s.brainstormIdeas = ""
	prompt := s.userPrompt
	image := s.inputImage
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.phase = PhaseIdle
		s.mu.Unlock()
	}()

	start := s.now()
	result := s.client.Brainstorm(ctx, prompt, image)
	duration := s.now().Sub(start)

	if result.Degraded {
		s.logger.Warn("brainstorm degraded",
			"session_id", s.id,
			"duration_ms", duration.Milliseconds(),
		)
	} else {
		s.logger.Info("brainstorm completed",
			"session_id", s.id,
			"duration_ms", duration.Milliseconds(),
		)
	}

	s.mu.Lock()
	s.brainstormIdeas = result.Ideas
	s.mu.Unlock()
	return nil
}

// RestoreFromHistory puts a past generation back on display: the generated
// image and prompt are set to the item's values. The input image, error
// state and history ordering are untouched.
func (s *Session) RestoreFromHistory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.history.ByID(id)
	if !ok {
		return ErrUnknownHistoryItem
	}
	s.generatedImage = item.ImageURL
	s.userPrompt = item.Prompt
	return nil
}

// Export hands the generated image to the exporter. It mutates no session
// state. Without a generated image it returns ErrNothingToExport.
func (s *Session) Export(ctx context.Context, exporter Exporter) (string, error) {
	s.mu.Lock()
	image := s.generatedImage
	s.mu.Unlock()

	if image == "" {
		return "", ErrNothingToExport
	}

	basename := "toybox-" + strconv.FormatInt(s.now().UnixMilli(), 10)
	path, err := exporter.Save(ctx, image, basename)
	if err != nil {
		s.logger.Error("export failed",
			"session_id", s.id,
			"error", err.Error(),
		)
		return "", err
	}

	s.logger.Info("image exported",
		"session_id", s.id,
		"path", path,
	)
	return path, nil
}

// Snapshot returns an immutable copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		HasInputImage:   s.inputImage != nil,
		UserPrompt:      s.userPrompt,
		GeneratedImage:  s.generatedImage,
		AutoEnhance:     s.autoEnhance,
		AspectRatio:     s.aspectRatio,
		Phase:           s.phase,
		Enhancing:       s.enhancing,
		BrainstormIdeas: s.brainstormIdeas,
		ErrorMessage:    s.errorMsg,
		History:         s.history.Items(),
	}
	if s.inputImage != nil {
		snap.InputMIMEType = s.inputImage.MIMEType
	}
	return snap
}

// InputImage returns a copy of the attached source image, or nil.
// The data slice is shared but treated as immutable.
func (s *Session) InputImage() *InputImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inputImage == nil {
		return nil
	}
	img := *s.inputImage
	return &img
}
