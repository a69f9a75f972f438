package agentpack_test

import (
	"context"
	"fmt"
	"log"

	"github.com/geminikit/agentpack"
	"github.com/geminikit/agentpack/agents"
	"github.com/geminikit/agentpack/components"
	"github.com/geminikit/agentpack/config"
	"github.com/geminikit/agentpack/gemini"
	"github.com/geminikit/agentpack/knowledge"
	"github.com/geminikit/agentpack/schema"
)

func ExampleNewSearchAgent() {
	ctx := context.Background()
	cfg := config.FromEnv()
	clt, err := gemini.NewClient(ctx, cfg.APIKey)
	if err != nil {
		log.Fatal(err)
	}
	defer clt.Close()

	agent := agentpack.NewSearchAgent(clt,
		agentpack.WithSearchURL("http://localhost:8080"),
		agentpack.WithShowToolCalls(true),
	)
	output := new(schema.Output)
	if err := agent.Run(ctx, schema.NewInput("What are the latest advancements in artificial intelligence?"), output, nil); err != nil {
		log.Fatal(err)
	}
	fmt.Println(output.Reply)
}

func ExampleNewCalculatorAgent() {
	ctx := context.Background()
	clt, err := gemini.NewClient(ctx, "your-api-key")
	if err != nil {
		log.Fatal(err)
	}
	defer clt.Close()

	agent := agentpack.NewCalculatorAgent(clt)
	output := new(schema.Output)
	apiResp := new(components.LLMResponse)
	if err := agent.Run(ctx, schema.NewInput("Is 97 a prime number?"), output, apiResp); err != nil {
		log.Fatal(err)
	}
	fmt.Println(output.Reply)
}

func ExampleNewWikipediaAgent() {
	ctx := context.Background()
	clt, err := gemini.NewClient(ctx, "your-api-key")
	if err != nil {
		log.Fatal(err)
	}
	defer clt.Close()

	kb, err := knowledge.New("wikipedia", knowledge.GeminiEmbedding(clt, "text-embedding-004"))
	if err != nil {
		log.Fatal(err)
	}
	agent := agentpack.NewWikipediaAgent(clt, agentpack.WithKnowledgeBase(kb))
	output := new(schema.Output)
	if err := agent.Run(ctx, schema.NewInput("Tell me about gravity."), output, nil); err != nil {
		log.Fatal(err)
	}
	fmt.Println(output.Reply)
	fmt.Println("documents stored:", kb.Count())
}

func ExampleNewTeam() {
	ctx := context.Background()
	clt, err := gemini.NewClient(ctx, "your-api-key")
	if err != nil {
		log.Fatal(err)
	}
	defer clt.Close()

	team := agentpack.NewTeam(clt, []agents.AnonymousAgent{
		agentpack.NewSearchAgent(clt),
		agentpack.NewCalculatorAgent(clt),
		agentpack.NewHackerNewsAgent(clt),
	}, agentpack.WithShowToolCalls(true))

	output := new(schema.Output)
	if err := team.Run(ctx, schema.NewInput("Summarize the top 2 stories on Hacker News."), output, nil); err != nil {
		log.Fatal(err)
	}
	fmt.Println(output.Reply)
}
