package cli

import (
	"os"
	"rgbsteg/internal/server"

	"github.com/spf13/cobra"
)

const (
	portEnvVar  = "RGBSTEG_PORT"
	defaultPort = "8080"
)

func ServeAppCommand() *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "rgbsteg serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.StartServer(resolvePort(port))
		},
	}

	command.Flags().StringVar(&port, "port", "", "Port on which to start the server, defaults to $"+portEnvVar+" or "+defaultPort)

	return command
}

func resolvePort(flagPort string) string {
	if flagPort != "" {
		return flagPort
	}
	if envPort := os.Getenv(portEnvVar); envPort != "" {
		return envPort
	}
	return defaultPort
}
