package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	configpkg "github.com/minhyannv/scriptforge-go/pkg/config"
)

// cliInvocation is the canonicalized result of flag and env parsing.
type cliInvocation struct {
	cfg      configpkg.Config
	topic    string
	maxWords int
	outPath  string
	html     bool
	mock     bool
}

// parseCLIConfig loads .env + flags + environment into one invocation.
func parseCLIConfig(args []string) (cliInvocation, error) {
	_ = godotenv.Load()

	defaults := configpkg.DefaultConfig()

	fs := flag.NewFlagSet("scriptforge", flag.ContinueOnError)
	configPath := fs.String("config", "", "Optional YAML config file (model, base_url, api_key, timeout_seconds, max_words)")
	maxWords := fs.Int("max_words", 0, fmt.Sprintf("Target word ceiling (default %d, or max_words from the config file)", defaults.MaxWords))
	outPath := fs.String("out", "", "Write the script to this file instead of stdout")
	html := fs.Bool("html", false, "Render the script as HTML")
	mock := fs.Bool("mock", false, "Use the offline mock generator (no API key needed)")
	verbose := fs.Bool("verbose", defaults.Verbose, "Verbose assembly logging")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: scriptforge [flags] <topic>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cliInvocation{}, err
	}

	if fs.NArg() != 1 {
		return cliInvocation{}, fmt.Errorf("exactly one topic argument is required")
	}
	topic := strings.TrimSpace(fs.Arg(0))
	if topic == "" {
		return cliInvocation{}, fmt.Errorf("topic must not be empty")
	}

	cfg := configpkg.Config{
		APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		BaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Model:   strings.TrimSpace(os.Getenv("OPENAI_MODEL")),
		Verbose: *verbose,
	}
	if *configPath != "" {
		fv, err := configpkg.LoadFile(*configPath)
		if err != nil {
			return cliInvocation{}, err
		}
		cfg = configpkg.Merge(cfg, fv)
	}
	cfg = configpkg.Normalize(cfg)

	words := *maxWords
	if words <= 0 {
		words = cfg.MaxWords
	}

	return cliInvocation{
		cfg:      cfg,
		topic:    topic,
		maxWords: words,
		outPath:  strings.TrimSpace(*outPath),
		html:     *html,
		mock:     *mock,
	}, nil
}
