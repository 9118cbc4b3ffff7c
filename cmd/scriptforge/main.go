// Package main provides the scriptforge CLI: assemble a long-form script on
// a topic under a word budget and print it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/minhyannv/scriptforge-go/pkg/assembler"
	"github.com/minhyannv/scriptforge-go/pkg/export"
	"github.com/minhyannv/scriptforge-go/pkg/generator"
	loggerpkg "github.com/minhyannv/scriptforge-go/pkg/logger"
)

func main() {
	inv, err := parseCLIConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	opts := []assembler.Option{assembler.WithLogger(appLogger)}
	if inv.mock {
		opts = append(opts, assembler.WithGenerator(generator.MockGenerator{}))
	}

	result := assembler.Run(context.Background(), inv.cfg, inv.topic, inv.maxWords, opts...)
	if !result.Success {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", result.Err)
		os.Exit(1)
	}

	output := result.Script
	if inv.html {
		output, err = export.HTML(result.Script)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if inv.outPath != "" {
		if err := os.WriteFile(inv.outPath, []byte(output+"\n"), 0o644); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", inv.outPath, err)
			os.Exit(1)
		}
	} else {
		fmt.Println(output)
	}

	loggerpkg.Info(appLogger, "assembly complete", map[string]any{
		"words":          result.WordCount,
		"iterations":     result.Iterations,
		"efficiency_pct": result.Efficiency,
		"final_segment":  string(result.FinalType),
	})
}
