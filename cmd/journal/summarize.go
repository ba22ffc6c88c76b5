package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodjournal-backend/internal/service/summary"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

var (
	summarizeUser     string
	summarizeWeeksAgo int
	summarizeTimezone string
	summarizeForce    bool
)

func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Fetch or generate the AI summary of one week",
		Args:  cobra.NoArgs,
		RunE:  runSummarizeCmd,
	}
	cmd.Flags().StringVar(&summarizeUser, "user", "", "user ID (required)")
	cmd.Flags().IntVar(&summarizeWeeksAgo, "weeks-ago", 0, "0 for the current week, 1 for the previous one, ...")
	cmd.Flags().StringVar(&summarizeTimezone, "tz", "", "IANA timezone (default: report.default_timezone)")
	cmd.Flags().BoolVar(&summarizeForce, "force", false, "regenerate even if a summary is stored")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func runSummarizeCmd(cmd *cobra.Command, _ []string) error {
	userID, err := parseUserFlag(summarizeUser)
	if err != nil {
		return err
	}

	c, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := ctxutil.WithUserID(cmd.Context(), userID)
	s, err := c.Summary.Weekly(ctx, summary.WeeklySummaryInput{
		WeeksAgo: summarizeWeeksAgo,
		Timezone: summarizeTimezone,
		Force:    summarizeForce,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Week %s .. %s (model: %s)\n",
		s.WeekStart.Format("2006-01-02"), s.WeekEnd.Format("2006-01-02"), s.Model)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Content)
}
