package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/xlsx"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/report"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

var (
	reportUser     string
	reportWeeks    int
	reportTimezone string
	reportXLSX     string
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a user's weekly mood reports or write them to a workbook",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	cmd.Flags().StringVar(&reportUser, "user", "", "user ID (required)")
	cmd.Flags().IntVar(&reportWeeks, "weeks", 0, "number of weeks (default: report.default_weeks)")
	cmd.Flags().StringVar(&reportTimezone, "tz", "", "IANA timezone (default: report.default_timezone)")
	cmd.Flags().StringVar(&reportXLSX, "xlsx", "", "write an .xlsx workbook to this path instead of printing")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	userID, err := parseUserFlag(reportUser)
	if err != nil {
		return err
	}

	c, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := ctxutil.WithUserID(cmd.Context(), userID)
	res, err := c.Reports.WeeklyReports(ctx, report.WeeklyReportsInput{Weeks: reportWeeks, Timezone: reportTimezone})
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(res.Timezone)
	if err != nil {
		return fmt.Errorf("load location: %w", err)
	}

	if reportXLSX == "" {
		return printReports(cmd.OutOrStdout(), res.Reports)
	}

	f, err := os.Create(reportXLSX)
	if err != nil {
		return fmt.Errorf("create %s: %w", reportXLSX, err)
	}
	if err := xlsx.WriteReports(f, res.Reports, loc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", reportXLSX, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d weeks to %s\n", len(res.Reports), reportXLSX)
	return nil
}

func printReports(w io.Writer, reports []domain.WeeklyReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WEEK\tENTRIES\tMOOD\tDAYS\tTODOS\tAVG WORDS\tDAILY\tTOP TAGS")
	for _, r := range reports {
		mood := "-"
		if r.DominantMood != nil {
			mood = *r.DominantMood
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d/%d\t%d\t%s\t%s\n",
			r.Window.Label, r.EntryCount, mood, r.WritingDays,
			r.CompletedTodos, r.CompletedTodos+r.PendingTodos, r.AvgWordsPerEntry,
			dailyScores(r.DailyMoodSeries), topTags(r.TopTags),
		)
	}
	return tw.Flush()
}

func dailyScores(points []domain.DailyMoodPoint) string {
	parts := make([]string, len(points))
	for i, p := range points {
		if p.MoodScore == nil {
			parts[i] = "-"
			continue
		}
		parts[i] = fmt.Sprintf("%.1f", *p.MoodScore)
	}
	return strings.Join(parts, " ")
}

func topTags(tags []domain.TagCount) string {
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = fmt.Sprintf("%s(%d)", t.Tag, t.Count)
	}
	return strings.Join(parts, ", ")
}
