// Package knowledge provides a small vector knowledge base used to store
// and recall fetched documents.
package knowledge

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/philippgille/chromem-go"
	"github.com/rs/xid"

	"github.com/geminikit/agentpack/gemini"
)

// Result is one recalled document.
type Result struct {
	ID         string
	Title      string
	Content    string
	Similarity float32
}

// Base is an in-memory vector store over one collection.
type Base struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// New creates a knowledge base with the given collection name and
// embedding function.
func New(name string, embed chromem.EmbeddingFunc) (*Base, error) {
	db := chromem.NewDB()
	collection, err := db.CreateCollection(name, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}
	return &Base{db: db, collection: collection}, nil
}

// GeminiEmbedding builds an embedding function backed by a Gemini
// embedding model.
func GeminiEmbedding(clt *gemini.Client, model string) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		resp, err := clt.EmbeddingModel(model).EmbedContent(ctx, genai.Text(text))
		if err != nil {
			return nil, fmt.Errorf("embed content: %w", err)
		}
		if resp.Embedding == nil {
			return nil, fmt.Errorf("empty embedding response")
		}
		return resp.Embedding.Values, nil
	}
}

// Add stores one document under a generated ID.
func (b *Base) Add(ctx context.Context, title, content string) error {
	doc := chromem.Document{
		ID:       xid.New().String(),
		Metadata: map[string]string{"title": title},
		Content:  content,
	}
	if err := b.collection.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("add document %q: %w", title, err)
	}
	return nil
}

// Search returns up to n documents most similar to the query.
func (b *Base) Search(ctx context.Context, query string, n int) ([]Result, error) {
	count := b.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if n <= 0 || n > count {
		n = count
	}
	hits, err := b.collection.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query knowledge base: %w", err)
	}
	out := make([]Result, 0, len(hits))
	for _, hit := range hits {
		out = append(out, Result{
			ID:         hit.ID,
			Title:      hit.Metadata["title"],
			Content:    hit.Content,
			Similarity: hit.Similarity,
		})
	}
	return out, nil
}

// Count reports the number of stored documents.
func (b *Base) Count() int {
	return b.collection.Count()
}
