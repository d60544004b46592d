package envelope

import (
	"github.com/juju/clock"
)

// RequestDateLayout formats requestDate as YYYY-MM-DD±HH:MM.
const RequestDateLayout = "2006-01-02-07:00"

// Metric is the authentication header attached to every request.
type Metric struct {
	DistributionChannel     string `xml:"distributionChannel"`
	Username                string `xml:"username"`
	RequestUniqueIdentifier int64  `xml:"requestUniqueIdentifier"`
	RequestDate             string `xml:"requestDate"`
}

// NewMetric creates the header for one request. The channel id is used both
// as distribution channel and as user name; the request identifier is the
// current Unix time in seconds.
func NewMetric(channel string, clk clock.Clock) Metric {
	if clk == nil {
		clk = clock.WallClock
	}
	now := clk.Now()
	return Metric{
		DistributionChannel:     channel,
		Username:                channel,
		RequestUniqueIdentifier: now.Unix(),
		RequestDate:             now.Format(RequestDateLayout),
	}
}
