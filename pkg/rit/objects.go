package rit

import (
	"context"
	"strings"

	"github.com/beevik/etree"
	"github.com/juju/errors"

	"github.com/sirosfoundation/go-rit/pkg/object"
)

// Report states
const (
	StatusOK         = "OK"
	StatusError      = "ERROR"
	StatusInProgress = "IN_PROGRESS"
)

// Report is the outcome of an upload
type Report struct {
	Status  string
	Info    string
	Objects []ObjectReport
}

// ObjectReport is the outcome for a single object
type ObjectReport struct {
	IdentifierSZ  *object.SZIdentifier
	IdentifierRIT string
	State         string
	Errors        []string
}

// Completed reports whether the catalog finished processing the
// transaction. An empty or in-progress status means it has not.
func (r *Report) Completed() bool {
	switch strings.ToUpper(r.Status) {
	case "", StatusInProgress, "PENDING", "PROCESSING":
		return false
	default:
		return true
	}
}

// Failed lists the objects whose state is not OK
func (r *Report) Failed() []ObjectReport {
	var out []ObjectReport
	for _, o := range r.Objects {
		if !strings.EqualFold(o.State, StatusOK) {
			out = append(out, o)
		}
	}
	return out
}

// CreateTouristObject builds an object using the catalog metadata to decide
// which attributes are translatable. The client's channel is used as the
// distribution channel.
func (c *Client) CreateTouristObject(ctx context.Context, spec object.Spec, language string) (*object.TouristObject, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return nil, err
	}
	channel := object.DistributionChannel{Name: c.channel, Code: c.channel}
	return object.BuildTouristObject(spec, channel, idx.IsTranslatable)
}

// AddObject creates or modifies one object synchronously
func (c *Client) AddObject(ctx context.Context, obj *object.TouristObject) (*Report, error) {
	if obj == nil {
		return nil, errors.NotValidf("nil tourist object")
	}
	resp, err := c.invoke(ctx, OpAddModifyObject, GroupGiveTouristObjects, "touristObject", obj)
	if err != nil {
		return nil, err
	}
	report := decodeReport(resp.Body)
	c.logger.Info("object sent", "status", report.Status, "objects", len(report.Objects))
	return report, nil
}

// AddObjects submits objects for asynchronous processing and returns the
// transaction identifier to pass to GetReport.
func (c *Client) AddObjects(ctx context.Context, objs []*object.TouristObject) (string, error) {
	if len(objs) == 0 {
		return "", errors.NotValidf("empty object list")
	}
	for i, obj := range objs {
		if obj == nil {
			return "", errors.NotValidf("nil tourist object at position %d", i)
		}
	}

	resp, err := c.invoke(ctx, OpAddModifyObjects, GroupGiveTouristObjects, "touristObject", objs)
	if err != nil {
		return "", err
	}

	txID := childText(result(resp.Body), "transactionIdentifier")
	if txID == "" {
		return "", errors.Errorf("%s: response without transactionIdentifier", OpAddModifyObjects)
	}
	c.logger.Info("objects submitted", "count", len(objs), "transaction", txID)
	return txID, nil
}

// GetReport returns the state of a bulk transaction
func (c *Client) GetReport(ctx context.Context, transactionID string) (*Report, error) {
	if transactionID == "" {
		return nil, errors.NotValidf("empty transaction identifier")
	}
	resp, err := c.invoke(ctx, OpGetReport, GroupGiveTouristObjects, "transactionIdentifier", transactionID)
	if err != nil {
		return nil, err
	}
	return decodeReport(resp.Body), nil
}

// result unwraps the optional <return> element of a response
func result(body *etree.Element) *etree.Element {
	if ret := body.SelectElement("return"); ret != nil {
		return ret
	}
	return body
}

func decodeReport(body *etree.Element) *Report {
	ret := result(body)
	r := &Report{
		Status: childText(ret, "status"),
		Info:   childText(ret, "info"),
	}

	for _, el := range ret.SelectElements("reportForObject") {
		r.Objects = append(r.Objects, decodeObjectReport(el))
	}
	for _, rep := range ret.SelectElements("report") {
		for _, el := range rep.SelectElements("reportForObject") {
			r.Objects = append(r.Objects, decodeObjectReport(el))
		}
	}
	return r
}

func decodeObjectReport(el *etree.Element) ObjectReport {
	o := ObjectReport{
		State: childText(el, "objectState"),
	}

	if sz := el.SelectElement("identifierSZ"); sz != nil {
		o.IdentifierSZ = &object.SZIdentifier{
			IdentifierType:       childText(sz, "identifierType"),
			ArtificialIdentifier: childText(sz, "artificialIdentifier"),
			DatabaseTable:        childText(sz, "databaseTable"),
			ConcatenationOfField: childText(sz, "concatenationOfField"),
			LastModified:         childText(sz, "lastModified"),
		}
		if dc := sz.SelectElement("distributionChannel"); dc != nil {
			o.IdentifierSZ.DistributionChannel = object.DistributionChannel{
				Name: childText(dc, "name"),
				Code: childText(dc, "code"),
			}
		}
	}

	if id := el.SelectElement("identifierRIT"); id != nil {
		o.IdentifierRIT = childText(id, "identifierRIT")
		if o.IdentifierRIT == "" {
			o.IdentifierRIT = strings.TrimSpace(id.Text())
		}
	}

	for _, e := range el.FindElements(".//error") {
		msg := childText(e, "message")
		if msg == "" {
			msg = strings.TrimSpace(e.Text())
		}
		if code := childText(e, "code"); code != "" {
			msg = code + ": " + msg
		}
		if msg != "" {
			o.Errors = append(o.Errors, msg)
		}
	}
	return o
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
