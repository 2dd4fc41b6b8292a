package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"thirdcoast.systems/reelscout/internal/media"
	"thirdcoast.systems/reelscout/internal/table"
	"thirdcoast.systems/reelscout/pkg/utils/format"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeAssets(w io.Writer, items []media.Item) error {
	providerTitle := cases.Title(language.English)
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "#\tSCORE\tPROVIDER\tTYPE\tSIZE\tLENGTH\tLICENSE\tBY\tSOURCE")
	for i, it := range items {
		size := ""
		if it.Width != nil || it.Height != nil {
			size = format.IntPtr(it.Width) + "x" + format.IntPtr(it.Height)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			format.Score(it.Score),
			providerTitle.String(it.Provider),
			it.Type,
			size,
			format.DurationPtr(it.Duration),
			format.Truncate(it.License, 24),
			format.Truncate(it.Attribution, 24),
			it.SourceURL,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s results\n", humanize.Comma(int64(len(items))))
	return err
}

func writeCredits(w io.Writer, items []media.Item) error {
	for _, it := range items {
		if _, err := fmt.Fprintln(w, media.CreditFor(it).Line()); err != nil {
			return err
		}
	}
	return nil
}

// writeVideos prints the well-known columns of a view. Tables without them
// fall back to every column as plain cells.
func writeVideos(w io.Writer, t table.Table) error {
	tw := newTabWriter(w)
	if !t.Has("title") && !t.Has("videoId") {
		for i, c := range t.Columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, c)
		}
		fmt.Fprintln(tw)
		for _, vals := range t.Values() {
			for i, v := range vals {
				if i > 0 {
					fmt.Fprint(tw, "\t")
				}
				fmt.Fprint(tw, format.Cell(v))
			}
			fmt.Fprintln(tw)
		}
		return tw.Flush()
	}

	hasScore := t.Has("score")
	header := "#\tTITLE\tCHANNEL\tPUBLISHED\tVIEWS\tLIKES\tLENGTH\tSHORT\tURL"
	if hasScore {
		header = "#\tSCORE\t" + header[2:]
	}
	fmt.Fprintln(tw, header)
	now := time.Now()
	for i, r := range t.Rows {
		fmt.Fprintf(tw, "%d\t", i+1)
		if hasScore {
			s, _ := table.ToFloat(r["score"])
			fmt.Fprintf(tw, "%s\t", format.Score(s))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			format.Truncate(format.Cell(r["title"]), 48),
			format.Truncate(format.Cell(r["channelTitle"]), 20),
			published(r["publishedAt"], now),
			count(r["viewCount"]),
			count(r["likeCount"]),
			length(r["durationSec"]),
			shortMark(r["isShorts"]),
			format.Cell(r["url"]),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s videos\n", humanize.Comma(int64(t.Len())))
	return err
}

func published(v any, now time.Time) string {
	ts, ok := table.ParseTimestamp(v)
	if !ok {
		return format.Cell(v)
	}
	return humanize.RelTime(ts, now, "ago", "from now")
}

func count(v any) string {
	n, ok := table.ToInt(v)
	if !ok {
		return ""
	}
	return humanize.Comma(n)
}

func length(v any) string {
	s, ok := table.ToFloat(v)
	if !ok {
		return ""
	}
	return format.Duration(s)
}

func shortMark(v any) string {
	if b, ok := v.(bool); ok && b {
		return "yes"
	}
	return ""
}
