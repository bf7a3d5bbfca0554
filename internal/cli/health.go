package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the server and its progress store",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(cmd)

			result, status, err := client.Health()
			if err != nil {
				return err
			}
			out.Trace("GET /api/v1/health status=%d", status)
			out.Print(result)

			if status != http.StatusOK {
				return fmt.Errorf("server is %s", result.Status)
			}
			return nil
		},
	}
}
