package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/sirosfoundation/go-rit/pkg/object"
)

// objectFile is the on-disk description of one object. JSON files are read
// with the same decoder.
type objectFile struct {
	Identifier   identifierFile   `yaml:"identifier" json:"identifier"`
	LastModified string           `yaml:"lastModified" json:"lastModified"`
	Categories   []string         `yaml:"categories" json:"categories"`
	Attributes   []attributeFile  `yaml:"attributes" json:"attributes"`
	Attachments  []attachmentFile `yaml:"attachments" json:"attachments"`
}

type identifierFile struct {
	RowID  string `yaml:"rowId" json:"rowId"`
	Table  string `yaml:"table" json:"table"`
	Unique string `yaml:"unique" json:"unique"`
	RIT    string `yaml:"rit" json:"rit"`
}

type attributeFile struct {
	Code   string      `yaml:"code" json:"code"`
	Values []valueFile `yaml:"values" json:"values"`
}

type valueFile struct {
	Language string `yaml:"language" json:"language"`
	Value    any    `yaml:"value" json:"value"`
}

type attachmentFile struct {
	Name    string       `yaml:"name" json:"name"`
	Type    string       `yaml:"type" json:"type"`
	Source  string       `yaml:"source" json:"source"`
	Kind    string       `yaml:"kind" json:"kind"`
	File    string       `yaml:"file" json:"file"`
	License *licenseFile `yaml:"license" json:"license"`
}

type licenseFile struct {
	ValidTo string `yaml:"validTo" json:"validTo"`
	Owner   string `yaml:"owner" json:"owner"`
}

func readObjectFile(path string) (object.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return object.Spec{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var f objectFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return object.Spec{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	spec, err := f.spec(filepath.Dir(path))
	if err != nil {
		return object.Spec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

func (f *objectFile) spec(baseDir string) (object.Spec, error) {
	spec := object.Spec{
		LastModified: f.LastModified,
		Categories:   f.Categories,
	}

	id, err := f.Identifier.identifier()
	if err != nil {
		return object.Spec{}, err
	}
	spec.Identifier = id

	for _, a := range f.Attributes {
		values := make([]object.LanguageValue, 0, len(a.Values))
		for _, v := range a.Values {
			val, err := toValue(v.Value)
			if err != nil {
				return object.Spec{}, fmt.Errorf("attribute %s: %w", a.Code, err)
			}
			values = append(values, object.In(v.Language, val))
		}
		spec.Attributes = append(spec.Attributes, object.Attr(a.Code, values...))
	}

	for i, a := range f.Attachments {
		att, err := a.attachment(baseDir)
		if err != nil {
			return object.Spec{}, fmt.Errorf("attachment %d: %w", i, err)
		}
		spec.Attachments = append(spec.Attachments, att)
	}

	return spec, nil
}

func (id identifierFile) identifier() (object.Identifier, error) {
	set := 0
	for _, s := range []string{id.RowID, id.Unique, id.RIT} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("identifier needs exactly one of rowId, unique or rit")
	}

	switch {
	case id.RowID != "":
		return object.EncodeSourceRowID(id.RowID, id.Table), nil
	case id.Unique != "":
		return object.NewUniqueStringID(id.Unique), nil
	default:
		return object.CatalogID{IdentifierRIT: id.RIT}, nil
	}
}

func (a attachmentFile) attachment(baseDir string) (object.Attachment, error) {
	var license *object.License
	if a.License != nil {
		license = object.NewLicense(a.License.ValidTo, a.License.Owner)
	}

	if a.File != "" {
		path := a.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return object.EncodeFile(path, license)
	}

	kind, err := object.ParseSourceKind(a.Kind)
	if err != nil {
		return object.Attachment{}, err
	}
	return object.NewAttachment(a.Name, a.Type, a.Source, kind, license), nil
}

func toValue(v any) (object.Value, error) {
	switch x := v.(type) {
	case string:
		return object.Text(x), nil
	case bool:
		return object.Bool(x), nil
	case int:
		return object.Int(int64(x)), nil
	case int64:
		return object.Int(x), nil
	case uint64:
		return object.Text(strconv.FormatUint(x, 10)), nil
	case float64:
		return object.Text(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case []any:
		items := make([]string, 0, len(x))
		for _, item := range x {
			if _, nested := item.([]any); nested {
				return object.Value{}, fmt.Errorf("nested lists are not allowed")
			}
			items = append(items, fmt.Sprint(item))
		}
		return object.List(items...), nil
	case nil:
		return object.Value{}, fmt.Errorf("missing value")
	default:
		return object.Value{}, fmt.Errorf("unsupported value of type %T", v)
	}
}
