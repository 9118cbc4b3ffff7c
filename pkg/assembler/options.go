package assembler

import (
	"github.com/minhyannv/scriptforge-go/pkg/generator"
	loggerpkg "github.com/minhyannv/scriptforge-go/pkg/logger"
)

// Option configures optional runtime dependencies for Assembler.
type Option func(*assemblerDeps)

type assemblerDeps struct {
	logger    loggerpkg.Logger
	generator generator.Generator
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *assemblerDeps) {
		d.logger = l
	}
}

// WithGenerator injects a generation service, replacing the OpenAI default.
func WithGenerator(g generator.Generator) Option {
	return func(d *assemblerDeps) {
		d.generator = g
	}
}
