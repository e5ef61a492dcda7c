package llmprovider

import (
	"fmt"
	"sort"
	"strings"

	"todo-assistant/config"
	"todo-assistant/pkg/deepseek"
	"todo-assistant/pkg/gemini"
)

// InitializeProviders builds the provider chain from config, ordered by
// ascending priority. Disabled entries are skipped; entries that fail to
// initialize are skipped too, so one bad API key does not take the whole
// chain down. An error is returned only when nothing usable remains.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	enabled := make([]config.ProviderConfig, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool { return enabled[i].Priority < enabled[j].Priority })

	providers := make([]Provider, 0, len(enabled))
	var failures []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(failures, "; "))
	}
	return providers, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil
	}

	return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
}
