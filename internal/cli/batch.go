package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veridex/veridex/internal/agent"
	"github.com/veridex/veridex/internal/worker"
)

var batchWorkers int

// batchCmd analyzes many claims concurrently
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze claims from a file, one per line",
	Long: `Batch reads claims from a file (one per line, # comments and blank
lines skipped) and analyzes them concurrently through a worker pool.
One JSON object is printed per claim.

Example:
  veridex batch claims.txt
  veridex batch claims.txt --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent workers (default from config)")
}

type batchLine struct {
	Text  string  `json:"text"`
	Label string  `json:"label,omitempty"`
	PFake float64 `json:"p_fake,omitempty"`
	Error string  `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	workers := cfg.Concurrency.BatchWorkers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	ctx := cmd.Context()
	svc := agent.New(cfg)
	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	processor := worker.NewBatchProcessor(svc, workers)
	results, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	failed := 0
	for _, r := range results {
		line := batchLine{Text: r.Text}
		if r.Error != nil {
			line.Error = r.Error.Error()
			failed++
		} else {
			line.Label = string(r.Result.Label)
			line.PFake = r.Result.PFake
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "analyzed %d claims, %d failed\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d claims failed", failed, len(results))
	}
	return nil
}
