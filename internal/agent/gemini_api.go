package agent

import (
	"context"
	"strings"

	"github.com/maxbolgarin/lang"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// geminiAPI calls the Gemini API directly. It presents itself through the
// same Tool interface as the CLI tools, so the pipeline does not care that
// no subprocess is involved.
type geminiAPI struct {
	apiKey string
	model  string
}

func newGeminiAPI(apiKey, model string) Tool {
	return &geminiAPI{
		apiKey: apiKey,
		model:  lang.Check(model, defaultGeminiModel),
	}
}

func (t *geminiAPI) Name() string {
	return "gemini-api"
}

func (t *geminiAPI) Present() bool {
	return t.apiKey != ""
}

func (t *geminiAPI) Invoke(ctx context.Context, input string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  t.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &ServiceError{Tool: t.Name(), Err: err}
	}

	result, err := client.Models.GenerateContent(ctx,
		t.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: input}}}},
		nil,
	)
	if err != nil {
		return "", &ServiceError{Tool: t.Name(), Err: err}
	}

	var content strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			content.WriteString(part.Text)
		}
		break
	}

	return content.String(), nil
}
