package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/contracts"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
)

// FileSource reads the catalog from seed files on disk.
//
// The explore seed holds "products" and "categories"; the optional landing
// seed holds "featured_products", "clearance_brands" and "site_stats".
// Either path may be empty. The format follows the file extension: .json,
// .yaml or .yml.
type FileSource struct {
	explorePath string
	landingPath string
}

var _ contracts.Source = (*FileSource)(nil)

// NewFileSource creates a FileSource.
func NewFileSource(explorePath, landingPath string) *FileSource {
	return &FileSource{
		explorePath: explorePath,
		landingPath: landingPath,
	}
}

// rowDecoder decodes one element of a seed collection.
type rowDecoder func(v any) error

type exploreRows struct {
	products   []rowDecoder
	categories []rowDecoder
}

type seedCodec interface {
	explore(data []byte) (exploreRows, error)
	landing(data []byte) (domain.Landing, error)
}

// Load implements contracts.Source.
// A row that fails to decode or validate is rejected on its own; only an
// unreadable or structurally malformed file fails the load.
func (s *FileSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows exploreRows
	if s.explorePath != "" {
		data, codec, err := readSeed(s.explorePath)
		if err != nil {
			return nil, err
		}
		if rows, err = codec.explore(data); err != nil {
			return nil, domain.NewDataSourceError(s.explorePath, err)
		}
	}

	c := newCollector(len(rows.products), len(rows.categories))
	for i, decode := range rows.products {
		var p domain.Product
		if err := decode(&p); err != nil {
			c.reject(domain.KindProduct, i, p.ID, fmt.Errorf("decode: %w", err))
			continue
		}
		c.product(i, p)
	}
	for i, decode := range rows.categories {
		var cat domain.Category
		if err := decode(&cat); err != nil {
			c.reject(domain.KindCategory, i, cat.ID, fmt.Errorf("decode: %w", err))
			continue
		}
		c.category(i, cat)
	}

	if s.landingPath != "" {
		data, codec, err := readSeed(s.landingPath)
		if err != nil {
			return nil, err
		}
		landing, err := codec.landing(data)
		if err != nil {
			return nil, domain.NewDataSourceError(s.landingPath, err)
		}
		c.landing(landing)
	}

	return c.result(), nil
}

func readSeed(path string) ([]byte, seedCodec, error) {
	codec, err := codecFor(path)
	if err != nil {
		return nil, nil, domain.NewDataSourceError(path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, domain.NewDataSourceError(path, err)
	}
	return data, codec, nil
}

func codecFor(path string) (seedCodec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonCodec{}, nil
	case ".yaml", ".yml":
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported seed format %q", filepath.Ext(path))
	}
}

type jsonCodec struct{}

func (jsonCodec) explore(data []byte) (exploreRows, error) {
	var raw struct {
		Products   []json.RawMessage `json:"products"`
		Categories []json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return exploreRows{}, err
	}

	rows := exploreRows{
		products:   make([]rowDecoder, len(raw.Products)),
		categories: make([]rowDecoder, len(raw.Categories)),
	}
	for i, msg := range raw.Products {
		rows.products[i] = func(v any) error { return json.Unmarshal(msg, v) }
	}
	for i, msg := range raw.Categories {
		rows.categories[i] = func(v any) error { return json.Unmarshal(msg, v) }
	}
	return rows, nil
}

func (jsonCodec) landing(data []byte) (domain.Landing, error) {
	var l domain.Landing
	err := json.Unmarshal(data, &l)
	return l, err
}

type yamlCodec struct{}

func (yamlCodec) explore(data []byte) (exploreRows, error) {
	var raw struct {
		Products   []yaml.Node `yaml:"products"`
		Categories []yaml.Node `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return exploreRows{}, err
	}

	rows := exploreRows{
		products:   make([]rowDecoder, len(raw.Products)),
		categories: make([]rowDecoder, len(raw.Categories)),
	}
	for i := range raw.Products {
		rows.products[i] = raw.Products[i].Decode
	}
	for i := range raw.Categories {
		rows.categories[i] = raw.Categories[i].Decode
	}
	return rows, nil
}

func (yamlCodec) landing(data []byte) (domain.Landing, error) {
	var l domain.Landing
	err := yaml.Unmarshal(data, &l)
	return l, err
}
