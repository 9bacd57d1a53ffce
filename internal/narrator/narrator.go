// Package narrator asks Gemini for a few lines of atmosphere about the room
// the detective has just entered. Narration is decoration only: it never
// changes what the game knows.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/EstruturaDados/detective-quest-OruamC/internal/mansion"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

//go:embed prompts/describe_room.txt
var describeRoomPrompt string

var describeRoomTmpl = template.Must(template.New("describe_room").Parse(describeRoomPrompt))

// Narrator describes a room.
type Narrator interface {
	Describe(ctx context.Context, room *mansion.Room) (string, error)
}

// Nop is the narrator used when Gemini is not configured.
type Nop struct{}

func (Nop) Describe(context.Context, *mansion.Room) (string, error) { return "", nil }

type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel("gemini-2.5-flash"),
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) Describe(ctx context.Context, room *mansion.Room) (string, error) {
	prompt, err := Prompt(room)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return strings.TrimSpace(string(text)), nil
}

// Prompt renders the narration request for room.
func Prompt(room *mansion.Room) (string, error) {
	var paths []string
	if room.HasLeft() {
		paths = append(paths, "left to "+room.Left.Name)
	}
	if room.HasRight() {
		paths = append(paths, "right to "+room.Right.Name)
	}

	var buf bytes.Buffer
	data := struct {
		Room  string
		Clue  string
		Paths string
	}{
		Room:  room.Name,
		Clue:  room.Clue,
		Paths: strings.Join(paths, " or "),
	}
	if err := describeRoomTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
