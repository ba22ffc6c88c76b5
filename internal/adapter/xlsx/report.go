// Package xlsx renders weekly report series as Excel workbooks.
package xlsx

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const (
	WeeklySheet = "Weekly"
	DailySheet  = "Daily"
)

// ContentType is the MIME type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var weeklyHeader = []string{
	"Week", "Start", "End", "Entries", "Dominant Mood", "Writing Days",
	"Completed To-dos", "Pending To-dos", "Avg Words", "Top Tags", "Summary",
}

var weeklyWidths = []float64{30, 12, 12, 9, 15, 13, 16, 14, 10, 30, 60}

var dailyHeader = []string{"Week", "Date", "Mood Score"}

var dailyWidths = []float64{30, 12, 12}

// WriteReports writes reports as a two-sheet workbook to w. Dates are
// rendered in loc.
func WriteReports(w io.Writer, reports []domain.WeeklyReport, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", WeeklySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DailySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := writeHeader(f, WeeklySheet, weeklyHeader, weeklyWidths, headerStyle); err != nil {
		return err
	}
	if err := writeHeader(f, DailySheet, dailyHeader, dailyWidths, headerStyle); err != nil {
		return err
	}

	dailyRow := 2
	for i, r := range reports {
		if err := writeRow(f, WeeklySheet, i+2, weeklyValues(r, loc)); err != nil {
			return err
		}
		for _, p := range r.DailyMoodSeries {
			var score any
			if p.MoodScore != nil {
				score = *p.MoodScore
			}
			if err := writeRow(f, DailySheet, dailyRow, []any{r.Window.Label, p.Date, score}); err != nil {
				return err
			}
			dailyRow++
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func weeklyValues(r domain.WeeklyReport, loc *time.Location) []any {
	var mood any
	if r.DominantMood != nil {
		mood = *r.DominantMood
	}
	tags := make([]string, len(r.TopTags))
	for i, t := range r.TopTags {
		tags[i] = fmt.Sprintf("%s (%d)", t.Tag, t.Count)
	}
	return []any{
		r.Window.Label,
		r.Window.Start.In(loc).Format(time.DateOnly),
		r.Window.End.In(loc).Format(time.DateOnly),
		r.EntryCount,
		mood,
		r.WritingDays,
		r.CompletedTodos,
		r.PendingTodos,
		r.AvgWordsPerEntry,
		strings.Join(tags, ", "),
		r.SummaryText,
	}
}

func writeHeader(f *excelize.File, sheet string, header []string, widths []float64, style int) error {
	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("set header %s!%s: %w", sheet, cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("style header %s!%s: %w", sheet, cell, err)
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("header column: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return fmt.Errorf("set width %s!%s: %w", sheet, col, err)
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// writeRow writes values from column A; nil values leave the cell empty.
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
