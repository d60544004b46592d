package rit

import (
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-rit/pkg/envelope"
	"github.com/sirosfoundation/go-rit/pkg/object"
)

const searchResponse = `<ns2:searchTouristObjectsResponse xmlns:ns2="http://rit.poland.travel/integration/">
  <return>
    <touristObject><touristObjectIdentifierRIT><identifierRIT>1</identifierRIT></touristObjectIdentifierRIT></touristObject>
    <touristObject><touristObjectIdentifierRIT><identifierRIT>2</identifierRIT></touristObjectIdentifierRIT></touristObject>
  </return>
</ns2:searchTouristObjectsResponse>`

const addObjectResponse = `<ns2:addModifyObjectResponse xmlns:ns2="http://rit.poland.travel/integration/">
  <return>
    <report>
      <reportForObject>
        <identifierSZ>
          <identifierType>I1</identifierType>
          <artificialIdentifier>100</artificialIdentifier>
        </identifierSZ>
        <objectState>OK</objectState>
      </reportForObject>
    </report>
  </return>
</ns2:addModifyObjectResponse>`

const addObjectsResponse = `<ns2:addModifyObjectsResponse xmlns:ns2="http://rit.poland.travel/integration/">
  <return>
    <transactionIdentifier>tx-42</transactionIdentifier>
  </return>
</ns2:addModifyObjectsResponse>`

func marshal(t *testing.T, env *envelope.Envelope) string {
	t.Helper()
	data, err := env.Marshal("")
	require.NoError(t, err)
	return string(data)
}

func TestClient_GetAllObjects(t *testing.T) {
	inv := &fakeInvoker{responses: map[string]string{OpSearchTouristObjects: searchResponse}}
	c := newTestClient(t, inv)

	body, err := c.GetAllObjects(context.Background(), "en-GB")
	require.NoError(t, err)
	assert.Len(t, FoundObjects(body), 2)

	call := inv.last(t)
	assert.Equal(t, OpSearchTouristObjects, call.operation)
	assert.Equal(t, GroupCollectTouristObjects, call.group)
	assert.Equal(t, "searchCondition", call.env.Key)
	assert.Equal(t, SearchCondition{Language: "en-GB", AllForDistributionChannel: true}, call.env.Payload)
	assert.Contains(t, marshal(t, call.env), "<allForDistributionChannel>true</allForDistributionChannel>")
}

func TestClient_GetObjectByID(t *testing.T) {
	inv := &fakeInvoker{responses: map[string]string{OpSearchTouristObjects: searchResponse}}
	c := newTestClient(t, inv)

	_, err := c.GetObjectByID(context.Background(), "900100", "")
	require.NoError(t, err)

	xml := marshal(t, inv.last(t).env)
	assert.Contains(t, xml, "<language>pl-PL</language>")
	assert.Contains(t, xml, "<allForDistributionChannel>false</allForDistributionChannel>")
	assert.Contains(t, xml, "<objectIdentifier><identifierRIT>900100</identifierRIT></objectIdentifier>")

	_, err = c.GetObjectByID(context.Background(), "", "")
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Len(t, inv.calls, 1)
}

func TestFoundObjects_Nil(t *testing.T) {
	assert.Nil(t, FoundObjects(nil))
}

func TestClient_AddObject(t *testing.T) {
	inv := &fakeInvoker{responses: map[string]string{OpAddModifyObject: addObjectResponse}}
	c := newTestClient(t, inv)

	obj := &object.TouristObject{IdentifierRIT: &object.CatalogID{IdentifierRIT: "900100"}}
	report, err := c.AddObject(context.Background(), obj)
	require.NoError(t, err)

	call := inv.last(t)
	assert.Equal(t, OpAddModifyObject, call.operation)
	assert.Equal(t, GroupGiveTouristObjects, call.group)
	assert.Equal(t, "touristObject", call.env.Key)
	assert.Same(t, obj, call.env.Payload)

	require.Len(t, report.Objects, 1)
	assert.Equal(t, "OK", report.Objects[0].State)
	assert.Equal(t, "100", report.Objects[0].IdentifierSZ.ArtificialIdentifier)
	assert.Empty(t, report.Failed())

	_, err = c.AddObject(context.Background(), nil)
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestClient_AddObjects(t *testing.T) {
	inv := &fakeInvoker{responses: map[string]string{OpAddModifyObjects: addObjectsResponse}}
	c := newTestClient(t, inv)

	objs := []*object.TouristObject{
		{IdentifierRIT: &object.CatalogID{IdentifierRIT: "1"}},
		{IdentifierRIT: &object.CatalogID{IdentifierRIT: "2"}},
	}
	txID, err := c.AddObjects(context.Background(), objs)
	require.NoError(t, err)
	assert.Equal(t, "tx-42", txID)

	call := inv.last(t)
	assert.Equal(t, OpAddModifyObjects, call.operation)
	assert.Equal(t, GroupGiveTouristObjects, call.group)

	xml := marshal(t, call.env)
	assert.Contains(t, xml, "<touristObject><touristObjectIdentifierRIT><identifierRIT>1</identifierRIT>")
	assert.Contains(t, xml, "<touristObject><touristObjectIdentifierRIT><identifierRIT>2</identifierRIT>")
}

func TestClient_AddObjects_Invalid(t *testing.T) {
	inv := &fakeInvoker{responses: map[string]string{OpAddModifyObjects: `<addModifyObjectsResponse/>`}}
	c := newTestClient(t, inv)

	_, err := c.AddObjects(context.Background(), nil)
	assert.True(t, errors.Is(err, errors.NotValid))

	_, err = c.AddObjects(context.Background(), []*object.TouristObject{nil})
	assert.ErrorContains(t, err, "position 0")
	assert.Empty(t, inv.calls)

	_, err = c.AddObjects(context.Background(), []*object.TouristObject{{}})
	assert.ErrorContains(t, err, "without transactionIdentifier")
}

func TestClient_GetReport(t *testing.T) {
	inv := &fakeInvoker{responses: map[string]string{OpGetReport: readFile(t, "testdata/report_response.xml")}}
	c := newTestClient(t, inv)

	report, err := c.GetReport(context.Background(), "tx-42")
	require.NoError(t, err)

	call := inv.last(t)
	assert.Equal(t, "transactionIdentifier", call.env.Key)
	assert.Equal(t, "tx-42", call.env.Payload)

	assert.Equal(t, StatusOK, report.Status)
	assert.Contains(t, report.Info, "Przetworzono 2 z 2")
	assert.True(t, report.Completed())
	require.Len(t, report.Objects, 2)

	first := report.Objects[0]
	assert.Equal(t, "I2", first.IdentifierSZ.IdentifierType)
	assert.Equal(t, "hotels", first.IdentifierSZ.DatabaseTable)
	assert.Equal(t, "12345", first.IdentifierSZ.DistributionChannel.Code)
	assert.Equal(t, "900100", first.IdentifierRIT)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "hotel-101", failed[0].IdentifierSZ.ConcatenationOfField)
	assert.Equal(t, []string{"E017: Missing required attribute A001"}, failed[0].Errors)

	_, err = c.GetReport(context.Background(), "")
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestReport_Completed(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"", false},
		{"IN_PROGRESS", false},
		{"pending", false},
		{"OK", true},
		{"ERROR", true},
	}
	for _, tt := range tests {
		r := &Report{Status: tt.status}
		assert.Equal(t, tt.want, r.Completed(), tt.status)
	}
}

func TestClient_GetEvents(t *testing.T) {
	inv := &fakeInvoker{responses: map[string]string{OpGetEvents: `<getEventsResponse><return/></getEventsResponse>`}}
	c := newTestClient(t, inv)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	_, err := c.GetEvents(context.Background(), from, to)
	require.NoError(t, err)

	call := inv.last(t)
	assert.Equal(t, OpGetEvents, call.operation)
	assert.Equal(t, GroupCollectEvents, call.group)
	assert.Equal(t, "criteria", call.env.Key)
	assert.Equal(t, EventCriteria{DateFrom: "2024-05-01", DateTo: "2024-05-31"}, call.env.Payload)

	_, err = c.GetEvents(context.Background(), to, from)
	assert.True(t, errors.Is(err, errors.NotValid))

	_, err = c.GetEvents(context.Background(), time.Time{}, to)
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Len(t, inv.calls, 1)
}
