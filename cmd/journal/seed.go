package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodjournal-backend/internal/app/seeder"
)

var (
	seedUser     string
	seedTimezone string
	seedWeeks    int
	seedDryRun   bool
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo diary entries for a user",
		Long: "Insert randomly generated diary entries for the last --weeks weeks.\n" +
			"Other settings come from SEEDER_* environment variables.",
		Args: cobra.NoArgs,
		RunE: runSeedCmd,
	}
	cmd.Flags().StringVar(&seedUser, "user", "", "user ID (required)")
	cmd.Flags().StringVar(&seedTimezone, "tz", "", "IANA timezone used to place entries in the day (default: report.default_timezone)")
	cmd.Flags().IntVar(&seedWeeks, "weeks", 0, "weeks to fill (default: SEEDER_WEEKS)")
	cmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "generate without inserting")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func runSeedCmd(cmd *cobra.Command, _ []string) error {
	userID, err := parseUserFlag(seedUser)
	if err != nil {
		return err
	}
	scfg, err := seeder.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("weeks") {
		scfg.Weeks = seedWeeks
	}
	if cmd.Flags().Changed("dry-run") {
		scfg.DryRun = seedDryRun
	}
	if err := scfg.Validate(); err != nil {
		return err
	}

	c, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Close()

	tz := seedTimezone
	if tz == "" {
		tz = c.Config.Report.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load location %q: %w", tz, err)
	}

	res, err := seeder.New(c.Logger, c.Entries, c.TxManager, *scfg).Run(cmd.Context(), userID, time.Now(), loc)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "inserted %d entries in %d batches (%s .. %s)\n",
		res.Inserted, res.Batches, res.From.In(loc).Format(time.DateOnly), res.To.In(loc).Format(time.DateOnly))
	return nil
}
