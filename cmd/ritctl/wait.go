package main

import (
	"context"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/retry"

	"github.com/sirosfoundation/go-rit/pkg/rit"
)

const errPending = errors.ConstError("transaction still in progress")

type reportGetter interface {
	GetReport(ctx context.Context, transactionID string) (*rit.Report, error)
}

// waitForReport polls until the transaction completes. Only a pending
// report is retried; any other error ends the wait and keeps its chain.
func waitForReport(ctx context.Context, g reportGetter, txID string, interval, timeout time.Duration) (*rit.Report, error) {
	var report *rit.Report

	err := retry.Call(retry.CallArgs{
		Func: func() error {
			r, err := g.GetReport(ctx, txID)
			if err != nil {
				return err
			}
			report = r
			if !r.Completed() {
				return errPending
			}
			return nil
		},
		IsFatalError: func(err error) bool {
			return !errors.Is(err, errPending)
		},
		Attempts:    -1,
		Delay:       interval,
		MaxDuration: timeout,
		Clock:       clock.WallClock,
		Stop:        ctx.Done(),
	})
	if err != nil {
		if retry.IsDurationExceeded(err) || retry.IsRetryStopped(err) {
			return report, errors.Annotatef(errPending, "transaction %s", txID)
		}
		return nil, err
	}
	return report, nil
}
