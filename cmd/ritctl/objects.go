package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirosfoundation/go-rit/pkg/object"
	"github.com/sirosfoundation/go-rit/pkg/rit"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id|all|metadata>",
		Short: "Fetch one object, all objects of the channel, or the metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, lang, err := a.client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			target := args[0]
			switch {
			case target == "all":
				body, err := c.GetAllObjects(ctx, lang)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.errOut, "%d objects\n", len(rit.FoundObjects(body)))
				return writeXML(a.out, body)
			case target == "metadata":
				body, err := c.GetMetadata(ctx, lang)
				if err != nil {
					return err
				}
				return writeXML(a.out, body)
			case isNumeric(target):
				body, err := c.GetObjectByID(ctx, target, lang)
				if err != nil {
					return err
				}
				return writeXML(a.out, body)
			default:
				return fmt.Errorf("unsupported get target %q", target)
			}
		},
	}
}

func isNumeric(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

func newSendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <file>...",
		Short: "Create or modify objects described in YAML or JSON files",
		Long: `send builds objects from their description files and uploads them.

A single file is sent synchronously and its report printed. Several files
are sent as one bulk transaction; use "ritctl report" to follow it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, lang, err := a.client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			objs := make([]*object.TouristObject, 0, len(args))
			for _, path := range args {
				spec, err := readObjectFile(path)
				if err != nil {
					return err
				}
				obj, err := c.CreateTouristObject(ctx, spec, lang)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				objs = append(objs, obj)
			}

			if len(objs) == 1 {
				report, err := c.AddObject(ctx, objs[0])
				if err != nil {
					return err
				}
				return writeReport(a.out, report)
			}

			txID, err := c.AddObjects(ctx, objs)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, txID)
			return nil
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	var (
		wait     bool
		interval time.Duration
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "report <transaction>",
		Short: "Show the report of a bulk transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			txID := args[0]

			var report *rit.Report
			if wait {
				report, err = waitForReport(ctx, c, txID, interval, timeout)
			} else {
				report, err = c.GetReport(ctx, txID)
			}
			if err != nil {
				return err
			}
			return writeReport(a.out, report)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "poll until the transaction completes")
	cmd.Flags().DurationVar(&interval, "interval", 10*time.Second, "delay between polls")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Minute, "give up after this long")
	return cmd
}

func newEventsCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List catalog events in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(rit.EventDateLayout, from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			end := start
			if to != "" {
				if end, err = time.Parse(rit.EventDateLayout, to); err != nil {
					return fmt.Errorf("invalid --to: %w", err)
				}
			}

			c, _, err := a.client()
			if err != nil {
				return err
			}
			body, err := c.GetEvents(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return writeXML(a.out, body)
		},
	}

	cmd.Flags().StringVar(&from, "from", time.Now().Format(rit.EventDateLayout), "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day (YYYY-MM-DD), defaults to --from")
	return cmd
}
