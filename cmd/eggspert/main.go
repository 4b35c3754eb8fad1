// Command eggspert is the poultry farming assistant CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/ai"
	configfile "github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/config/file"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/notify/smtp"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/prices/eggrates"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/search/customsearch"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/search/youtube"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/storage/sqlite"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/vector/flat"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/weather/openweather"
	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driving/cli"
	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
	"github.com/eggspert-labs/eggspert-cli/internal/core/services"
	"github.com/eggspert-labs/eggspert-cli/internal/extractors"
	"github.com/eggspert-labs/eggspert-cli/internal/extractors/csvfile"
	"github.com/eggspert-labs/eggspert-cli/internal/extractors/image"
	"github.com/eggspert-labs/eggspert-cli/internal/extractors/pdffile"
	"github.com/eggspert-labs/eggspert-cli/internal/extractors/plaintext"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	baseDir := filepath.Join(home, ".eggspert")

	config, err := configfile.NewConfigStore(baseDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	prompts, err := configfile.NewPromptStore(filepath.Join(baseDir, "prompts"))
	if err != nil {
		return fmt.Errorf("creating prompt store: %w", err)
	}

	store, err := sqlite.NewStore(filepath.Join(baseDir, "data"))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	index := flat.New()
	defer index.Close()

	ctx := context.Background()
	if err := loadIndex(ctx, store.DocumentStore(), index); err != nil {
		logger.Warn("Loading vector index: %v", err)
	}

	// AI backends. Unconfigured providers come back nil and the pipeline
	// degrades to placeholders for the affected sections.
	visionSvc, err := ai.CreateVisionService(&domain.VisionSettings{
		APIKey: configOrEnv(config, "ai.vision.api_key", "GEMINI_API_KEY"),
		Model:  config.GetString("ai.vision.model"),
	})
	if err != nil {
		logger.Warn("Vision backend unavailable: %v", err)
	}

	llmSvc, err := ai.CreateLLMService(llmSettings(config))
	if err != nil {
		logger.Warn("LLM backend unavailable: %v", err)
	}

	embedSvc, err := ai.CreateEmbeddingService(embeddingSettings(config))
	if err != nil {
		logger.Warn("Embedding backend unavailable: %v", err)
	}

	registry := extractors.NewRegistry()
	registry.Register(plaintext.New())
	registry.Register(csvfile.New())
	registry.Register(pdffile.New())
	if visionSvc != nil {
		registry.Register(image.New(visionSvc))
	}

	// Enrichment backends.
	var webSearch driven.WebSearchService
	if key := configOrEnv(config, "search.google.api_key", "GOOGLE_API_KEY"); key != "" {
		svc, err := customsearch.NewSearchService(ctx, customsearch.Config{
			APIKey:   key,
			EngineID: configOrEnv(config, "search.google.engine_id", "GOOGLE_CSE_ID"),
		})
		if err != nil {
			logger.Warn("Web search unavailable: %v", err)
		} else {
			webSearch = svc
		}
	}

	var videoSearch driven.VideoSearchService
	if key := configOrEnv(config, "search.youtube.api_key", "YOUTUBE_API_KEY"); key != "" {
		svc, err := youtube.NewSearchService(ctx, youtube.Config{APIKey: key})
		if err != nil {
			logger.Warn("Video search unavailable: %v", err)
		} else {
			videoSearch = svc
		}
	}

	settings := pipelineSettings(config)

	// Core pipeline.
	indexerOpts := []services.IndexerOption{
		services.WithChunkSize(config.GetInt("pipeline.chunk_size")),
	}
	if _, ok := config.Get("pipeline.chunk_overlap"); ok {
		indexerOpts = append(indexerOpts, services.WithChunkOverlap(config.GetInt("pipeline.chunk_overlap")))
	}
	indexer := services.NewIndexerService(
		registry, embedSvc, store.DocumentStore(), store.IndexMetaStore(), index,
		indexerOpts...,
	)
	retriever := services.NewRetrievalService(
		embedSvc, index, store.DocumentStore(), store.IndexMetaStore())
	answerer := services.NewAnswerService(llmSvc, settings.ContextBudget)
	answerer.SetPromptStore(prompts)

	gate, err := services.NewRelevanceGate(settings.Gate, llmSvc)
	if err != nil {
		return fmt.Errorf("creating relevance gate: %w", err)
	}
	if aware, ok := gate.(driven.PromptStoreAware); ok {
		aware.SetPromptStore(prompts)
	}

	enrichment := services.NewEnrichmentService(webSearch, videoSearch)
	assistant := services.NewAssistant(gate, retriever, answerer, enrichment, settings)

	// Farm tools.
	advisor := services.NewAdvisoryService(newWeatherService(config))
	labSvc := services.NewLabReportService(registry, llmSvc)
	labSvc.SetPromptStore(prompts)
	diagSvc := services.NewDiagnosisService(visionSvc)
	diagSvc.SetPromptStore(prompts)
	profitSvc := services.NewProfitService()

	priceSource := eggrates.NewSource(eggrates.Config{
		Cities: config.GetStringSlice("prices.cities"),
	})
	priceListing := services.NewPriceListing(priceSource)

	var monitor *services.PriceMonitorService
	if notifier := newNotifier(config); notifier != nil {
		monitor = services.NewPriceMonitorService(priceSource, store.MonitorStateStore(), notifier)
	}

	schedulerConfig := domain.DefaultSchedulerConfig()
	if config.GetBool("scheduler.disabled") {
		schedulerConfig.Enabled = false
	}
	scheduler := services.NewScheduler(schedulerConfig, store.SchedulerStore(), monitorOrNil(monitor))

	// Wire the command tree.
	cli.SetVersion(version)
	cli.SetConfigStore(config)
	svcBundle := &cli.Services{
		Assistant: assistant,
		Index:     indexer,
		Weather:   advisor,
		Lab:       labSvc,
		Diagnosis: diagSvc,
		Profit:    profitSvc,
		Prices:    priceListing,
	}
	if monitor != nil {
		svcBundle.Monitor = monitor
	}
	cli.SetServices(svcBundle)
	cli.SetMonitorLock(services.NewMonitorLock(filepath.Join(baseDir, "monitor.lock")))
	cli.SetChatConfig(&cli.ChatConfig{
		AssistantService: assistant,
		IndexService:     indexer,
		Scheduler:        scheduler,
		SchedulerConfig:  schedulerConfig,
	})

	return cli.Execute()
}

// loadIndex rehydrates the in-memory vector index from persisted chunks.
func loadIndex(ctx context.Context, docStore driven.DocumentStore, index driven.VectorIndex) error {
	chunks, err := docStore.ListChunks(ctx)
	if err != nil {
		return err
	}
	for i := range chunks {
		if len(chunks[i].Embedding) == 0 {
			continue
		}
		if err := index.Add(ctx, chunks[i].ID, chunks[i].Embedding); err != nil {
			return err
		}
	}
	if n := index.Len(); n > 0 {
		logger.Debug("Loaded %d vectors into the index", n)
	}
	return nil
}

// llmSettings builds LLM settings from config with environment fallback
// for the API key that matches the configured provider.
func llmSettings(config driven.ConfigStore) *domain.LLMSettings {
	provider := domain.AIProvider(config.GetString("ai.llm.provider"))
	return &domain.LLMSettings{
		Provider: provider,
		Model:    config.GetString("ai.llm.model"),
		BaseURL:  config.GetString("ai.llm.base_url"),
		APIKey:   configOrEnv(config, "ai.llm.api_key", providerKeyEnv(provider)),
	}
}

// embeddingSettings builds embedding settings from config. Ollama is the
// default provider since it needs no API key.
func embeddingSettings(config driven.ConfigStore) *domain.EmbeddingSettings {
	provider := domain.AIProvider(config.GetString("ai.embedding.provider"))
	if provider == "" {
		provider = domain.AIProviderOllama
	}
	return &domain.EmbeddingSettings{
		Provider: provider,
		Model:    config.GetString("ai.embedding.model"),
		BaseURL:  config.GetString("ai.embedding.base_url"),
		APIKey:   configOrEnv(config, "ai.embedding.api_key", providerKeyEnv(provider)),
	}
}

// providerKeyEnv maps a provider to its conventional API key variable.
func providerKeyEnv(provider domain.AIProvider) string {
	switch provider {
	case domain.AIProviderGroq:
		return "GROQ_API_KEY"
	case domain.AIProviderOpenAI:
		return "OPENAI_API_KEY"
	case domain.AIProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// pipelineSettings reads the answering-pipeline tunables from config.
// Zero values fall back to the domain defaults.
func pipelineSettings(config driven.ConfigStore) domain.PipelineSettings {
	settings := domain.PipelineSettings{
		Gate:          domain.GateStrategy(config.GetString("pipeline.gate")),
		RetrievalK:    config.GetInt("pipeline.retrieval_k"),
		WebResults:    config.GetInt("pipeline.web_results"),
		VideoResults:  config.GetInt("pipeline.video_results"),
		ContextBudget: config.GetInt("pipeline.context_budget"),
	}
	settings.Normalise()
	return settings
}

// newWeatherService creates the weather backend, or a stub that always
// reports unavailable when no API key is configured.
func newWeatherService(config driven.ConfigStore) driven.WeatherService {
	key := configOrEnv(config, "weather.api_key", "OPENWEATHER_API_KEY")
	if key == "" {
		return unavailableWeather{}
	}
	svc, err := openweather.NewWeatherService(openweather.Config{
		APIKey:  key,
		Timeout: 15 * time.Second,
	})
	if err != nil {
		logger.Warn("Weather backend unavailable: %v", err)
		return unavailableWeather{}
	}
	return svc
}

// newNotifier creates the email notifier, or nil when not configured.
func newNotifier(config driven.ConfigStore) driven.Notifier {
	from := config.GetString("monitor.email.from")
	to := config.GetString("monitor.email.to")
	password := configOrEnv(config, "monitor.email.password", "EGGSPERT_SMTP_PASSWORD")
	if from == "" || to == "" || password == "" {
		return nil
	}

	notifier, err := smtp.NewNotifier(smtp.Config{
		Addr:     config.GetString("monitor.email.addr"),
		From:     from,
		To:       splitRecipients(to),
		Password: password,
	})
	if err != nil {
		logger.Warn("Email notifier unavailable: %v", err)
		return nil
	}
	return notifier
}

// monitorOrNil converts a possibly-nil concrete monitor to the interface
// without producing a non-nil interface around a nil pointer.
func monitorOrNil(monitor *services.PriceMonitorService) driving.PriceMonitor {
	if monitor == nil {
		return nil
	}
	return monitor
}

// splitRecipients parses a comma-separated address list, dropping empty
// entries.
func splitRecipients(s string) []string {
	var out []string
	for _, addr := range strings.Split(s, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// configOrEnv reads a config key, falling back to an environment variable.
func configOrEnv(config driven.ConfigStore, key, envVar string) string {
	if v := config.GetString(key); v != "" {
		return v
	}
	if envVar == "" {
		return ""
	}
	return os.Getenv(envVar)
}

// unavailableWeather satisfies the weather port when no backend is
// configured; every city reports as unavailable.
type unavailableWeather struct{}

func (unavailableWeather) Current(_ context.Context, _ string) (*domain.WeatherReport, error) {
	return nil, fmt.Errorf("%w: no API key configured", domain.ErrWeatherUnavailable)
}
