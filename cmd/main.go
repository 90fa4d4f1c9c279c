package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cfranzen/modelhub"
	"github.com/cfranzen/modelhub/internal/server"
	"github.com/cfranzen/modelhub/internal/version"
	"github.com/cfranzen/modelhub/log"
)

var (
	configFile string
	cmd        = &cobra.Command{
		Use:           "modelhub",
		Short:         "multi provider model registry service",
		Version:       version.Version + " " + version.BuildRevision + " " + version.BuildTimestamp,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	modelsCmd = &cobra.Command{
		Use:   "models",
		Short: "list registry models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels(cmd)
		},
	}
)

func runServer(ctx context.Context) error {
	if configFile != "" {
		if err := server.LoadConfig(configFile); err != nil {
			return fmt.Errorf("load config file %s fail: %v", configFile, err)
		}
	}

	log.SetLogger(log.WrapZapLogger(log.NewZapLogger(server.C.Log)))

	return server.Run(ctx)
}

func runModels(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROVIDER\tAPI VERSION\tCAPABILITIES\t")

	for _, info := range modelhub.Catalog() {
		id := info.ID
		if id == modelhub.DefaultModelID {
			id += " (default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", id, info.Provider, info.APIVersion, strings.Join(info.Capabilities, ","))
	}

	return w.Flush()
}

func main() {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cobra.CheckErr(cmd.ExecuteContext(ctx))
}

func init() {
	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "config file")

	cmd.AddCommand(modelsCmd)
}
