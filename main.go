package main

import (
	"context"
	"fmt"

	coordinatorx "github.com/talentforge/recruiting-agent/agent/agents/coordinator"
	classifyx "github.com/talentforge/recruiting-agent/agent/classify"
	contractx "github.com/talentforge/recruiting-agent/agent/contract"
	detectx "github.com/talentforge/recruiting-agent/agent/detect"
	llmx "github.com/talentforge/recruiting-agent/agent/llm"
	configx "github.com/talentforge/recruiting-agent/pkg/config"
	_ "github.com/talentforge/recruiting-agent/pkg/logger/autoload"
	openrouterx "github.com/talentforge/recruiting-agent/pkg/openrouter"
)

func main() {
	ctx := context.Background()

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	registry, err := llmx.NewRegistry(*llmCfg)
	if err != nil {
		panic(err)
	}

	extractor := detectx.NewExtractor(detectx.DefaultConfig())
	classifier, err := classifyx.NewClassifier(extractor, registry)
	if err != nil {
		panic(err)
	}

	factory, err := coordinatorx.NewFactory(*llmCfg, registry, nil)
	if err != nil {
		panic(err)
	}

	// Sample request: a text chat hitting the api.
	rc := contractx.RequestContext{
		Headers:   map[string]string{"content-type": "application/json"},
		URL:       "/api/chat",
		UserAgent: "Mozilla/5.0",
	}

	bundle, err := factory.CreateBundleForRequest(ctx, classifier, rc, classifyx.OverridesFromEnv(rc.Env), "")
	if err != nil {
		panic(err)
	}

	// Raw SDK client for collaborators that bypass the eino model layer.
	sdkClient := openrouterx.NewClient(llmCfg.OpenRouterFor(bundle.Model()))
	if sdkClient == nil {
		panic("failed to initialize openrouter client")
	}

	fmt.Printf("bundle session=%s type=%s model=%s caps=%+v\n",
		bundle.SessionID(),
		bundle.InteractionType(),
		bundle.Model().ID,
		bundle.Model().Capabilities(),
	)
}
