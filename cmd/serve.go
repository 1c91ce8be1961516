package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ocinet/ocinet/internal/config"
	"github.com/ocinet/ocinet/internal/constants"
	ociclient "github.com/ocinet/ocinet/internal/oci"
	"github.com/ocinet/ocinet/internal/server"
	"github.com/ocinet/ocinet/internal/utils"
)

func NewServeCmd() *cobra.Command {
	var profile string
	var compartment string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve OCI network inventory over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := cfg.Server.Merge(profile, compartment, addr); err != nil {
				return err
			}
			if err := cfg.Server.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			client, err := ociclient.NewServiceClient(cfg.Server.OCIConfigFile, cfg.Server.Profile)
			if err != nil {
				return fmt.Errorf("initializing OCI client: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := klog.FromContext(ctx)
			if cfg.Server.CompartmentID == "" {
				logger.Info("Compartment not configured, /network/config will report an error", "env", constants.CompartmentEnvVar)
			} else {
				logger.Info("Serving compartment", "compartment", utils.ShortID(cfg.Server.CompartmentID), "profile", cfg.Server.Profile)
			}

			router := server.NewRouter(client.Network, client.Identity, &cfg.Server)
			return server.ListenAndServe(ctx, &cfg.Server, router)
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "OCI config profile to use")
	cmd.Flags().StringVarP(&compartment, "compartment", "c", "", "compartment OCID to inventory")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (host:port)")

	return cmd
}
