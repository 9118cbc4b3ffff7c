package generator

import (
	"fmt"
	"strings"
)

// Prompt is the system/user message pair sent to the model for one pass.
type Prompt struct {
	System string
	User   string
}

const systemPrompt = `You are a professional long-form script writer.
Respond with a single JSON object and nothing else. No prose before or after it.
The object has exactly these fields:
  "continuation": the next portion of the script (string, required)
  "summary": a one or two sentence summary of that portion (string, required)
  "completed": whether the script is now finished (boolean, required)
  "segment_type": one of "hook", "intro", "body", "conclusion" (string, optional)
Never exceed the word limit stated in the request.`

// BuildPrompt renders the progress snapshot into the message pair for one
// generation call.
func BuildPrompt(req Request) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Topic: %s\n", req.Topic))
	sb.WriteString(fmt.Sprintf("Words written so far: %d\n", req.WordCount))
	sb.WriteString(fmt.Sprintf("Target total words: %d\n", req.MaxWords))
	sb.WriteString(fmt.Sprintf("Words remaining: %d. This is an absolute limit; your continuation must not exceed it.\n", req.WordsRemaining))
	sb.WriteString("\n")

	if req.Opening {
		sb.WriteString("This is the start of the script. Write an attention-grabbing opening hook for the topic.\n")
	} else {
		sb.WriteString("Summary of the script so far:\n")
		sb.WriteString(strings.TrimSpace(req.Summary))
		sb.WriteString("\n\nContinue the script from where the summary leaves off. Do not repeat covered material.\n")
		sb.WriteString("Set \"completed\" to true only if this continuation brings the script to a natural end.\n")
	}

	return Prompt{System: systemPrompt, User: sb.String()}
}
