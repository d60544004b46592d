package rit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-rit/pkg/metadata"
	"github.com/sirosfoundation/go-rit/pkg/object"
)

func metadataInvoker(t *testing.T) *fakeInvoker {
	return &fakeInvoker{responses: map[string]string{
		OpGetMetadataOfRIT: readFile(t, "../metadata/testdata/metadata_response.xml"),
	}}
}

func TestClient_GetMetadata(t *testing.T) {
	inv := metadataInvoker(t)
	c := newTestClient(t, inv)

	body, err := c.GetMetadata(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "getMetadataOfRITResponse", body.Tag)

	call := inv.last(t)
	assert.Equal(t, OpGetMetadataOfRIT, call.operation)
	assert.Equal(t, GroupMetadataOfRIT, call.group)
	assert.Equal(t, "language", call.env.Key)
	assert.Equal(t, DefaultLanguage, call.env.Payload)
}

func TestClient_DerivedAccessors(t *testing.T) {
	inv := metadataInvoker(t)
	c := newTestClient(t, inv)
	ctx := context.Background()

	modified, err := c.GetMetadataLastModificationDate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-18T10:15:00+01:00", modified)

	attrs, err := c.GetAttributes(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, metadata.ShortText, attrs["A001"].TypeValidator)

	cats, err := c.GetCategories(ctx, "")
	require.NoError(t, err)
	assert.Len(t, cats, 2)

	cat, ok, err := c.GetCategory(ctx, "C040", true, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A089", "A001", "A009"}, cat.AttributeCodes)

	cat, ok, err = c.GetCategory(ctx, "C040", false, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A089", "A001"}, cat.AttributeCodes)

	_, ok, err = c.GetCategory(ctx, "C999", true, "")
	require.NoError(t, err)
	assert.False(t, ok)

	dicts, err := c.GetDictionaries(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, dicts, "D001")

	dict, ok, err := c.GetDictionary(ctx, "D001", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Województwa", dict.Name)

	title, ok, err := c.GetDictionaryTitle(ctx, "D001", "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Województwa", title)

	values, ok, err := c.GetDictionaryValues(ctx, "D001", "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"mazowieckie", "małopolskie"}, values)

	_, ok, err = c.GetDictionaryValues(ctx, "D999", "")
	require.NoError(t, err)
	assert.False(t, ok)

	langs, err := c.GetLanguages(ctx, "en-GB")
	require.NoError(t, err)
	assert.Equal(t, []string{"pl-PL", "en-GB", "de-DE"}, langs)

	translatable, err := c.IsTranslatable(ctx, "A009", "")
	require.NoError(t, err)
	assert.False(t, translatable)

	// Without a cache every lookup fetches fresh metadata
	assert.Len(t, inv.calls, 13)
	assert.Equal(t, "en-GB", inv.calls[11].env.Payload)
}

func TestClient_MetadataCache(t *testing.T) {
	inv := metadataInvoker(t)
	c := newTestClient(t, inv, WithMetadataCache())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.GetLanguages(ctx, "")
		require.NoError(t, err)
	}
	assert.Len(t, inv.calls, 1)

	_, err := c.GetAttributes(ctx, "en-GB")
	require.NoError(t, err)
	assert.Len(t, inv.calls, 2)

	c.InvalidateMetadata(DefaultLanguage)
	_, err = c.GetLanguages(ctx, "")
	require.NoError(t, err)
	assert.Len(t, inv.calls, 3)

	c.InvalidateMetadata("")
	_, _ = c.GetLanguages(ctx, "")
	_, _ = c.GetLanguages(ctx, "en-GB")
	assert.Len(t, inv.calls, 5)
}

type staticSource struct {
	idx       *metadata.Index
	languages []string
}

func (s *staticSource) Index(ctx context.Context, language string) (*metadata.Index, error) {
	s.languages = append(s.languages, language)
	return s.idx, nil
}

func TestClient_MetadataSource(t *testing.T) {
	idx, err := metadata.NewIndex(&metadata.Catalog{LastModificationDate: "static"})
	require.NoError(t, err)
	src := &staticSource{idx: idx}

	inv := &fakeInvoker{}
	c := newTestClient(t, inv, WithMetadataSource(src))

	modified, err := c.GetMetadataLastModificationDate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "static", modified)
	assert.Equal(t, []string{DefaultLanguage}, src.languages)
	assert.Empty(t, inv.calls)

	// no cache to invalidate
	c.InvalidateMetadata("")
}

func TestClient_CreateTouristObject(t *testing.T) {
	inv := metadataInvoker(t)
	c := newTestClient(t, inv)

	spec := object.Spec{
		Identifier:   object.EncodeSourceRowID("100", "hotels"),
		LastModified: "2024-03-18",
		Categories:   []string{"C040"},
		Attributes: []object.AttributeInput{
			object.Attr("A001",
				object.In("pl-PL", object.Text("Hotel")),
				object.In("en-GB", object.Text("Hotel EN"))),
			object.Attr("A089",
				object.In("pl-PL", object.Int(123)),
				object.In("en-GB", object.Int(456))),
			object.Attr("A009", object.In("pl-PL", object.Text("mazowieckie"))),
		},
	}

	obj, err := c.CreateTouristObject(context.Background(), spec, "")
	require.NoError(t, err)

	require.NotNil(t, obj.IdentifierSZ)
	assert.Equal(t, object.DistributionChannel{Name: "12345", Code: "12345"}, obj.IdentifierSZ.DistributionChannel)
	assert.Equal(t, "2024-03-18", obj.IdentifierSZ.LastModified)

	attrs := obj.Attributes.Attribute
	require.Len(t, attrs, 3)
	require.Len(t, attrs[0].AttrVals, 2)
	assert.Equal(t, "en-GB", attrs[0].AttrVals[1].Language)

	require.Len(t, attrs[1].AttrVals, 1)
	assert.Equal(t, object.LanguageAll, attrs[1].AttrVals[0].Language)
	assert.Equal(t, []string{"123"}, attrs[1].AttrVals[0].Value.Strings())

	require.Len(t, attrs[2].AttrVals, 1)
	assert.Equal(t, object.LanguageAll, attrs[2].AttrVals[0].Language)
}
