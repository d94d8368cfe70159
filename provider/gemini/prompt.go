package gemini

import "fmt"

// stylePrompt is the fixed aesthetic template appended to every generation
// request. Every output is rendered as a collectible toy-box blister pack.
const stylePrompt = `Isometric 3D product package of the reference image in the style of a collectible toy box and futuristic NFT room. Ultra-clean isometric composition showing a miniature interior scene inside a transparent plastic blister package with a cardboard backing on a dark background. The package is shaped like a small room, with smooth white walls, light wooden floor, and a large front window of clear plastic. Soft neon rim lighting in yellow and purple reflecting on the plastic edges, subtle reflections and shadows, high gloss materials, global illumination, 3D render, octane style, ultra‑high resolution, no text cut-offs, centered composition, empty dark gradient background.`

// enhanceInstruction asks for a single improved prompt with no commentary.
const enhanceInstruction = `You are an expert prompt engineer for AI image generation.
Improve the following user prompt to create a stunning, highly detailed Isometric 3D Toy Box/NFT Room style image.
Keep the user's original subject and intent clear, but add keywords for lighting, texture, and atmosphere that fit the "Toy Box Blister Pack" aesthetic.
Return ONLY the enhanced prompt text, no explanations.

User Prompt: %q`

// Brainstorm instruction templates, one per input combination. Each requests
// exactly three numbered, concise concept descriptions.
const (
	brainstormImageAndContext = `Analyze the attached image. Based on its visual elements and the idea %q, generate 3 creative, distinct 3D Isometric Toy Box/NFT Room concepts. Format as a concise numbered list (1., 2., 3.) with short descriptions suitable for image generation.`

	brainstormImageOnly = `Analyze the attached image. Extract its key themes and styles to generate 3 creative 3D Isometric Toy Box/NFT Room concepts based on it. Format as a concise numbered list (1., 2., 3.) with short descriptions suitable for image generation.`

	brainstormContextOnly = `Based on the idea %q, generate 3 creative, distinct, and highly visual concepts for a 3D Isometric Toy Box/NFT Room. Format the output as a concise, numbered list (1., 2., 3.) with short punchy descriptions suitable for image generation prompts. Do not add intro text.`

	brainstormBlindIdeas = `Generate 3 random, creative, and futuristic concepts for a 3D Isometric Toy Box/NFT Room. Think sci-fi, cyberpunk, or fantasy. Format as a concise, numbered list (1., 2., 3.) with short punchy descriptions.`
)

// Brainstorm fallback values. The example list stands in for an empty
// response; the failure message stands in for a hard call failure.
const (
	brainstormFallbackIdeas  = "1. Cyberpunk Ramen Shop\n2. Underwater Coral Reef Lab\n3. Mars Colony Greenhouse"
	brainstormFailureMessage = "Failed to brainstorm ideas."
)

// buildGenerationPrompt combines the user's text with the fixed style
// template. With an input image the text becomes transformation
// instructions; without one it is the subject description.
func buildGenerationPrompt(userPrompt string, hasImage bool) string {
	if hasImage {
		prefix := ""
		if userPrompt != "" {
			prefix = "Instructions: " + userPrompt + ". "
		}
		return prefix + "Transform this image into the following style: " + stylePrompt
	}
	return userPrompt + ". " + stylePrompt
}

// buildEnhancementPrompt wraps the original prompt in the enhancement
// instruction.
func buildEnhancementPrompt(original string) string {
	return fmt.Sprintf(enhanceInstruction, original)
}

// buildBrainstormPrompt picks the instruction template matching the
// available inputs.
func buildBrainstormPrompt(contextText string, hasContext, hasImage bool) string {
	switch {
	case hasImage && hasContext:
		return fmt.Sprintf(brainstormImageAndContext, contextText)
	case hasImage:
		return brainstormImageOnly
	case hasContext:
		return fmt.Sprintf(brainstormContextOnly, contextText)
	default:
		return brainstormBlindIdeas
	}
}
