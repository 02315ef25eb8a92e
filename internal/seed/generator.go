// ABOUTME: Seed data generator for the mock backend.
// ABOUTME: Uses OpenAI for realistic band data, falling back to the static dataset.

package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"github.com/abmusica/maestro/internal/store"
)

// Dataset maps a resource slug to the documents to insert.
type Dataset map[string][]map[string]any

// Generator creates seed data using OpenAI or falls back to the static dataset.
type Generator struct {
	client *openai.Client
	useAI  bool
	model  string
}

// NewGenerator creates a generator, loading the API key from .env if available.
func NewGenerator() *Generator {
	g := &Generator{}

	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		godotenv.Load(filepath.Join(home, ".env"))
	}

	g.model = os.Getenv("OPENAI_MODEL")
	if g.model == "" {
		g.model = "gpt-5-mini"
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		g.client = openai.NewClient(apiKey)
		g.useAI = true
		log.Printf("OpenAI API key found, generating seed data with model: %s", g.model)
	} else {
		log.Println("No OPENAI_API_KEY found, using static seed data")
	}

	return g
}

// Generate builds the full dataset. AI generation covers the people-heavy
// resources; everything else always comes from the static dataset.
func (g *Generator) Generate(ctx context.Context) Dataset {
	dataset := staticDataset()
	if !g.useAI {
		return dataset
	}

	type result struct {
		slug string
		docs []map[string]any
		err  error
	}
	resultCh := make(chan result, 3)

	generate := func(slug, prompt string) {
		docs, err := callOpenAI[[]map[string]any](ctx, g.client, g.model, prompt)
		resultCh <- result{slug, docs, err}
	}
	go generate("musicians", musiciansPrompt)
	go generate("students", studentsPrompt)
	go generate("songs", songsPrompt)

	for i := 0; i < 3; i++ {
		r := <-resultCh
		if r.err != nil || len(r.docs) == 0 {
			log.Printf("  AI generation of %s failed, keeping static data: %v", r.slug, r.err)
			continue
		}
		log.Printf("  Generated %d %s", len(r.docs), r.slug)
		dataset[r.slug] = r.docs
	}
	return dataset
}

// Apply inserts a dataset into the store. A non-empty resource filter seeds
// only that resource.
func Apply(s *store.Store, dataset Dataset, resource string) (int, error) {
	total := 0
	for slug, docs := range dataset {
		if resource != "" && slug != resource {
			continue
		}
		for _, doc := range docs {
			if _, err := s.CreateRecord(slug, doc); err != nil {
				return total, fmt.Errorf("seed %s: %w", slug, err)
			}
			total++
		}
	}
	return total, nil
}

const musiciansPrompt = `Generate 8 realistic members of a Brazilian community concert band as a JSON array.
Each object must have: firstName, lastName, email, phone (format "(11) 98765-4321"),
birthDate ("2006-01-02" format, adults between 20 and 65), professionalTitle
(e.g. "Professor de Música", "Engenheiro", "Estudante"), voz (one of "1", "2", "3", "4").
Use Brazilian Portuguese names. Respond with the JSON array only.`

const studentsPrompt = `Generate 6 realistic music students of a Brazilian community band as a JSON array.
Each object must have: firstName, lastName, email, phone (format "(11) 98765-4321"),
birthDate ("2006-01-02" format, ages between 9 and 30), enrollmentDate ("2006-01-02",
within the last 3 years), responsibleName and responsiblePhone (both filled for
students under 18, empty strings otherwise).
Use Brazilian Portuguese names. Respond with the JSON array only.`

const songsPrompt = `Generate 6 songs from the repertoire of a Brazilian concert band as a JSON array.
Each object must have: title, author, arranger, creationDate ("2006-01-02" format),
referenceLink (a YouTube URL or empty string), parts (array of objects with
instrument — one of "Trompete", "Trombone", "Sax Alto", "Sax Tenor", "Clarinete",
"Flauta", "Percussão", "Bateria" — voice "1" or "2", urlSheet "", urlMidi "").
Prefer real Brazilian pieces (choro, frevo, dobrados, MPB arrangements).
Respond with the JSON array only.`

func callOpenAI[T any](ctx context.Context, client *openai.Client, model, prompt string) (T, error) {
	var result T

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a data generator. Always respond with valid JSON only, no markdown or explanation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return result, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("no response from OpenAI")
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return result, nil
}
