// Package cli implements wastematch-cli, a terminal front end for the
// report form and the organization query.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dalemusser/wastematch/internal/client"
	"github.com/dalemusser/wastematch/internal/domain/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Host    string
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Host environment variables, in lookup order.
var hostEnvVars = []string{"API_HOST", "REACT_APP_API_HOST"}

// NewRootCommand creates the root command for wastematch-cli.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wastematch-cli",
		Short: "Report agricultural waste and find reuse organizations",
		Long: `Report agricultural waste and find reuse organizations.

The API host comes from --host, then $API_HOST, then $REACT_APP_API_HOST,
and defaults to ` + client.DefaultBaseURL + `.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Host, "host", "", "API base URL")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log API requests to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewOrgsCommand(opts))
	cmd.AddCommand(NewListCommand(opts, "types", "List organization waste types", (*client.Client).Types))
	cmd.AddCommand(NewListCommand(opts, "cities", "List organization cities", (*client.Client).Cities))

	return cmd
}

// resolveHost applies the flag > environment > default order.
func (o *RootOptions) resolveHost() string {
	if o.Host != "" {
		return o.Host
	}
	for _, k := range hostEnvVars {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return client.DefaultBaseURL
}

func (o *RootOptions) newClient() *client.Client {
	logger := zap.NewNop()
	if o.Verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
	return client.New(o.resolveHost(), logger)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// wasteTypeUsage appends the suggested waste types to a --type description.
func wasteTypeUsage(desc string) string {
	return desc + " (" + strings.Join(models.WasteTypes, ", ") + ")"
}

// completeWasteTypes offers the suggested waste types for --type. Other
// values are still accepted.
func completeWasteTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, t := range models.WasteTypes {
		if strings.HasPrefix(t, toComplete) {
			out = append(out, t)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
