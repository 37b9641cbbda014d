package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"blockc/internal/block"
	"blockc/internal/generator"
)

var (
	verbose    bool
	configPath string
	output     string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "blockc",
	Short: "blockc translates block workspaces into C++ source",
	Long: `blockc reads a serialized block workspace and emits an equivalent C++
translation unit: shared helper functions, procedure definitions, and a
main function wrapping the top-level statement stacks.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [workspace.json]",
	Short: "Generate C++ source from a workspace file",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read workspace: %w", err)
	}
	ws, err := block.Decode(data)
	if err != nil {
		return err
	}
	logger.Debug("Workspace decoded",
		zap.Int("topBlocks", len(ws.Blocks)),
		zap.Int("variables", len(ws.Variables)))

	cfg := generator.DefaultConfig()
	if configPath != "" {
		cfg, err = generator.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger.Debug("Config loaded", zap.String("path", configPath))
	}

	code, err := generator.New(cfg).Run(ws)
	if err != nil {
		return err
	}

	out := output
	if out == "" {
		out = strings.TrimSuffix(path, ".json") + ".cpp"
	}
	if err := os.WriteFile(out, []byte(code), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("Generated", zap.String("output", out), zap.Int("bytes", len(code)))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "Output filename (default: workspace name with .cpp)")
	generateCmd.Flags().StringVar(&configPath, "config", "", "YAML generator settings file")
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "blockc: %v\n", err)
		os.Exit(1)
	}
}
