package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veridex/veridex/internal/agent"
)

var checkSource string

// checkCmd analyzes a single claim from the command line
var checkCmd = &cobra.Command{
	Use:   "check <claim>",
	Short: "Analyze a single claim and print the verdict as JSON",
	Long: `Check trains the classifier on the bootstrap corpus, gathers
corroboration evidence, and prints the fused verdict.

Example:
  veridex check "Water found on Mars by NASA"
  veridex check --source twitter "Aliens living in New York sewers"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkSource, "source", "", "declared source of the claim (metadata only)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc := agent.New(cfg)

	if cfg.Output.Verbose {
		fmt.Fprintln(os.Stderr, "training classifier...")
	}
	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	text := strings.Join(args, " ")
	result, err := svc.Analyze(ctx, text, checkSource)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
