package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/natenatters/manchester-gis/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "manchester-gis",
		Short: "Historic structure generator for the Manchester time map",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(fortsCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate period-expanded building entities as JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0])
		},
	}
}

func fortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forts [forts-file]",
		Short: "Generate Roman fort reconstructions as JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runForts(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	var forts bool

	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate structure descriptors without generating",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], forts)
		},
	}

	cmd.Flags().BoolVar(&forts, "forts", false, "treat the input as a fort definition file")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local preview server",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", envPort(3000), "HTTP server port")
	return cmd
}

// envPort reads the default server port from .env or the environment.
func envPort(fallback int) int {
	_ = godotenv.Load()
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
	}
	return fallback
}
