package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zeromicro/go-zero/core/conf"
)

//go:embed products.json
var defaultDataset []byte

var _ Store = (*MemoryStore)(nil)

type (
	// Store is the read-only view of the product catalog.
	Store interface {
		All() []Product
		ByID(id string) (Product, bool)
	}

	// MemoryStore keeps the catalog in insertion order and never mutates it after construction.
	MemoryStore struct {
		products []Product
		index    map[string]int
	}

	dataset struct {
		Products []Product `json:"products"`
	}
)

var validate = validator.New()

// NewMemoryStore validates products and builds a store in the given order.
func NewMemoryStore(products []Product) (*MemoryStore, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	s := &MemoryStore{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		p.Id = strings.TrimSpace(p.Id)
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.Id, err)
		}
		if _, ok := s.index[p.Id]; ok {
			return nil, fmt.Errorf("product %q: %w", p.Id, ErrDuplicateId)
		}
		s.index[p.Id] = len(s.products)
		s.products = append(s.products, p.Clone())
	}
	return s, nil
}

// NewDefaultStore builds the store from the embedded storefront dataset.
func NewDefaultStore() (*MemoryStore, error) {
	var ds dataset
	if err := conf.LoadFromJsonBytes(defaultDataset, &ds); err != nil {
		return nil, fmt.Errorf("load default dataset: %w", err)
	}
	return NewMemoryStore(ds.Products)
}

// LoadStore reads a json/yaml/toml dataset file; an empty path selects the embedded dataset.
func LoadStore(path string) (*MemoryStore, error) {
	if strings.TrimSpace(path) == "" {
		return NewDefaultStore()
	}
	var ds dataset
	if err := conf.Load(path, &ds); err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return NewMemoryStore(ds.Products)
}

func MustLoadStore(path string) *MemoryStore {
	s, err := LoadStore(path)
	if err != nil {
		panic(err)
	}
	return s
}

// All returns every product in catalog order. The slice and its products are copies.
func (s *MemoryStore) All() []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out
}

func (s *MemoryStore) ByID(id string) (Product, bool) {
	idx, ok := s.index[strings.TrimSpace(id)]
	if !ok {
		return Product{}, false
	}
	return s.products[idx].Clone(), true
}

func (s *MemoryStore) Len() int {
	return len(s.products)
}

func validateProduct(p Product) error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if !p.Category.Valid() {
		return fmt.Errorf("category %q: %w", p.Category, ErrInvalidEnum)
	}
	if !p.Demographic.Valid() {
		return fmt.Errorf("demographic %q: %w", p.Demographic, ErrInvalidEnum)
	}
	if !p.Activity.Valid() {
		return fmt.Errorf("activity %q: %w", p.Activity, ErrInvalidEnum)
	}
	return nil
}
