package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muhlemmer/bsdate/pkg/bs"
	ad "github.com/muhlemmer/bsdate/pkg/date"
	"github.com/muhlemmer/bsdate/pkg/datepb"
	"github.com/spf13/cobra"
	"google.golang.org/genproto/googleapis/type/date"
)

func (a *app) toADCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "toad <bs-date>",
		Short:   "Convert a BS date to AD",
		Example: "  bsdate toad 2080-01-01",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := bs.ParseDate(args[0])
			if err != nil {
				return err
			}
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			iso, err := e.ToAD(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), iso)
			return nil
		},
	}
}

func (a *app) toBSCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tobs <ad-date>",
		Short:   "Convert an AD date to BS",
		Example: "  bsdate tobs 2023-04-14",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			d, err := e.ToBS(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (a *app) todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's BS date",
		Long:  "Print today's BS date. Dates outside the supported table are clamped to its first or last day.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Today())
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <bs-date>",
		Short:   "Add a number of days to a BS date",
		Example: "  bsdate add 2080-01-01 --days 30\n  bsdate add 2080-01-01 -n -1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt("days")
			if err != nil {
				return err
			}
			d, err := bs.ParseDate(args[0])
			if err != nil {
				return err
			}
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			res, err := e.AddDays(d, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().IntP("days", "n", 0, "days to add, negative to subtract")
	return cmd
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "diff <bs-from> <bs-to>",
		Short:   "Print the number of days from one BS date to another",
		Example: "  bsdate diff 2080-01-01 2081-01-01",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := bs.ParseDate(args[0])
			if err != nil {
				return err
			}
			to, err := bs.ParseDate(args[1])
			if err != nil {
				return err
			}
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			n, err := e.DiffDays(from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func (a *app) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range",
		Short: "Print the supported BS range and its AD equivalent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			r, ok := e.Range()
			if !ok {
				return fmt.Errorf("bsdate: calendar table is empty")
			}
			first, err := e.ToAD(r.Min)
			if err != nil {
				return err
			}
			last, err := e.ToAD(r.Max)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BS %s %s\n", r.Min, r.Max)
			fmt.Fprintf(out, "AD %s %s\n", first, last)
			return nil
		},
	}
}

// parsePeriod parses YYYY, YYYY-MM or YYYY-MM-DD into a date
// with the omitted fields left zero.
func parsePeriod(s string) (*date.Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) > 3 {
		return nil, fmt.Errorf("bsdate: invalid period %q", s)
	}

	var fields [3]int32
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 32)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("bsdate: invalid period %q", s)
		}
		fields[i] = int32(v)
	}

	return &date.Date{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}

func (a *app) spanCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "span <bs-year[-month[-day]]>",
		Short:   "Print the first and last AD day of a BS year, month or day",
		Example: "  bsdate span 2080\n  bsdate span 2080-06",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := parsePeriod(args[0])
			if err != nil {
				return err
			}
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			start, end, err := datepb.Interval(e, period)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), start.Format(ad.ISOLayout), end.Format(ad.ISOLayout))
			return nil
		},
	}
}
