package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/gateway/stub"
	"github.com/spf13/cobra"
)

func newStubCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve a local case gateway with built-in reference data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			srv := &http.Server{
				Addr:              addr,
				Handler:           stub.New(stub.DefaultFixtures(), logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Gateway stub listening on "+addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving stub: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8089", "Listen address")

	return cmd
}
