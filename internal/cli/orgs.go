package cli

import (
	"context"
	"fmt"

	"github.com/dalemusser/wastematch/internal/client"
	"github.com/spf13/cobra"
)

// OrgsOptions holds flags for the orgs command.
type OrgsOptions struct {
	*RootOptions
	Type string
	City string
}

// NewOrgsCommand creates the orgs command.
func NewOrgsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrgsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "orgs",
		Short:         "List organizations by waste type and city",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgs(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", wasteTypeUsage("exact waste type, blank for any"))
	cmd.Flags().StringVar(&opts.City, "city", "", "exact city (blank for any)")
	_ = cmd.RegisterFlagCompletionFunc("type", completeWasteTypes)

	return cmd
}

func runOrgs(opts *OrgsOptions, cmd *cobra.Command) error {
	orgs, err := opts.newClient().QueryOrgs(cmd.Context(), opts.Type, opts.City)

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		if werr := writeJSON(out, orgs); werr != nil {
			return werr
		}
		return err
	}
	for _, o := range orgs {
		writeOrg(out, o)
	}
	if len(orgs) == 0 && err == nil {
		fmt.Fprintln(out, "查無機構")
	}
	return err
}

// NewListCommand creates a command that prints one string per line from
// fetch, used for the distinct types and cities.
func NewListCommand(rootOpts *RootOptions, use, short string, fetch func(*client.Client, context.Context) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := fetch(rootOpts.newClient(), cmd.Context())
			if err != nil {
				return err
			}
			if vals == nil {
				vals = []string{}
			}
			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, vals)
			}
			for _, v := range vals {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}
