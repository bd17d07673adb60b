package commands

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"findash/internal/stubserver"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local in-memory stub of the dashboard API",
	Long: `serve starts a seeded, in-memory implementation of the dashboard API on
the given address. Point the dashboard at it with
--api http://localhost:3000/api. Data is lost when the process exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := stubserver.New()
		log.Info("stub API listening", "addr", serveAddr)
		return http.ListenAndServe(serveAddr, srv.Handler())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":3000", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
