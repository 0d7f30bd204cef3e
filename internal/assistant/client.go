package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

	maxOutputTokens = 300
	temperature     = 0.7
)

var errEmptyCompletion = errors.New("empty completion")

const systemPrompt = `You are a professional digital marketing customer support expert AI assistant for Combine Zenith. Only answer questions about Combine Zenith and its pages, not other topics.

Key Services: Digital Strategy, SEO & SEM, Social Media Marketing, Content Creation, Brand Identity, Web Development.

Response Guidelines:
- Be professional and helpful
- Focus on digital marketing solutions
- Keep responses concise (2-4 sentences)
- Redirect unrelated questions to marketing topics

Tone: Professional, knowledgeable, client-focused.

About Combine Zenith: a creative agency operating under the slogan "From Ideas to Impact — We Bring Your Vision to Life". It blends strategy with imagination and design with emotion, treats clients as partners in creation, and focuses on building meaning, trust, and lasting impact. Core values: authenticity, creativity, collaboration, integrity, innovation, client-centricity.

Core service areas: branding identity, creative strategy, creative work, AI videos, SEO, performance marketing (Google, Meta, TikTok), website development, and all print productions.

Contact: combinezenith@gmail.com — www.combinezenith.com. For team details, direct visitors to the team page.

User Question: %s`

type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(apiKey string) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(20*time.Second).
			SetHeader("Content-Type", "application/json"),
		apiKey: apiKey,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Complete sends one user message wrapped in the support prompt and returns
// the model's reply text.
func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	body := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: fmt.Sprintf(systemPrompt, message)}},
		}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: maxOutputTokens,
			Temperature:     temperature,
		},
	}

	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&out).
		Post(geminiEndpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini api error: %s", resp.Status())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errEmptyCompletion
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
