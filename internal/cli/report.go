package cli

import (
	"fmt"

	"github.com/dalemusser/wastematch/internal/client"
	"github.com/spf13/cobra"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Input  client.ReportInput
	Lat    float64
	Lng    float64
	HasGPS bool
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Submit a waste report and find the nearest organization",
		Long: `Submit a waste report, then look up the nearest organization that
takes the same waste type.

--lat and --lng stand in for the device position. Leave both out to
report from a device without GPS.

Example:
  wastematch-cli report --type 稻草 --city 南投市 --quantity 120 \
    --name 王小明 --phone 0912345678 --lat 23.84 --lng 120.68`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			latSet, lngSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
			if latSet != lngSet {
				return fmt.Errorf("--lat and --lng must be given together")
			}
			opts.HasGPS = latSet
			return runReport(opts, cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Input.Type, "type", "", wasteTypeUsage("waste type"))
	f.StringVar(&opts.Input.City, "city", "", "city or region")
	f.Float64Var(&opts.Input.Quantity, "quantity", 0, "quantity in kg")
	f.StringVar(&opts.Input.Name, "name", "", "contact name")
	f.StringVar(&opts.Input.Phone, "phone", "", "contact phone")
	f.Float64Var(&opts.Lat, "lat", 0, "latitude of the reporter")
	f.Float64Var(&opts.Lng, "lng", 0, "longitude of the reporter")
	for _, name := range []string{"type", "city", "quantity", "name", "phone"} {
		_ = cmd.MarkFlagRequired(name)
	}
	_ = cmd.RegisterFlagCompletionFunc("type", completeWasteTypes)

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	var loc client.Locator = client.NoLocator{}
	if opts.HasGPS {
		loc = client.FixedLocator{Lat: opts.Lat, Lng: opts.Lng}
	}
	flow := client.ReportFlow{Client: opts.newClient(), Locator: loc}

	res, err := flow.Run(cmd.Context(), opts.Input)

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		if werr := writeJSON(out, res); werr != nil {
			return werr
		}
		return err
	}

	fmt.Fprintln(out, res.Message)
	if res.GPSError != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), res.GPSError)
	}
	if res.Nearest != nil {
		fmt.Fprintln(out, "最近再利用業者")
		writeOrg(out, *res.Nearest)
		fmt.Fprintf(out, "  導航：%s\n", res.NavigationURL)
	}
	return err
}
