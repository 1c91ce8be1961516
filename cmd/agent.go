package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ocinet/ocinet/internal/agent"
	"github.com/ocinet/ocinet/internal/config"
)

func NewAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Answer questions about the network inventory with an LLM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := cfg.Agent.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			inventory, err := agent.NewInventoryClient(cfg.Agent.ServerURL, cfg.Agent.HTTPTimeout).FetchNetworkConfig(ctx)
			if err != nil {
				return fmt.Errorf("fetching network config: %w", err)
			}

			a := agent.New(
				agent.NewOpenAIModel(cfg.Agent.APIKey, cfg.Agent.Model),
				inventory,
				os.Stdin,
				os.Stdout,
				agent.WithModelName(cfg.Agent.Model),
				agent.WithLLMTimeout(cfg.Agent.LLMTimeout),
			)
			return a.Run(ctx)
		},
	}
}
