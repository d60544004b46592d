package rit

import (
	"context"
	"time"

	"github.com/beevik/etree"
	"github.com/juju/errors"
)

// EventDateLayout formats event query dates
const EventDateLayout = "2006-01-02"

// EventCriteria is the getEvents query
type EventCriteria struct {
	DateFrom string `xml:"dateFrom"`
	DateTo   string `xml:"dateTo"`
}

// GetEvents returns the events between from and to, both inclusive
func (c *Client) GetEvents(ctx context.Context, from, to time.Time) (*etree.Element, error) {
	if from.IsZero() || to.IsZero() {
		return nil, errors.NotValidf("empty event date range")
	}
	if to.Before(from) {
		return nil, errors.NotValidf("dateTo %s before dateFrom %s", to.Format(EventDateLayout), from.Format(EventDateLayout))
	}

	criteria := EventCriteria{
		DateFrom: from.Format(EventDateLayout),
		DateTo:   to.Format(EventDateLayout),
	}
	resp, err := c.invoke(ctx, OpGetEvents, GroupCollectEvents, "criteria", criteria)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
