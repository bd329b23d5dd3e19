package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// maxExactNumber is the largest magnitude a Struct number (a float64) holds exactly.
const maxExactNumber = 1 << 53

// errInexactNumber is returned for products whose integers a Struct cannot carry.
var errInexactNumber = errors.New("value exceeds the exact float64 integer range")

// productToStruct converts a product to a Struct keyed by its JSON field names.
// Struct numbers are doubles, so ids, prices and stock beyond ±2^53 are rejected.
func productToStruct(p domain.Product) (*structpb.Struct, error) {
	if err := checkExact(p); err != nil {
		return nil, err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}

func productsToListValue(products []domain.Product) (*structpb.ListValue, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(products))}
	for _, p := range products {
		s, err := productToStruct(p)
		if err != nil {
			return nil, fmt.Errorf("failed to convert product %d: %w", p.ID, err)
		}
		list.Values = append(list.Values, structpb.NewStructValue(s))
	}
	return list, nil
}

func structToProduct(s *structpb.Struct) (domain.Product, error) {
	data, err := protojson.Marshal(s)
	if err != nil {
		return domain.Product{}, err
	}

	var p domain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func listValueToProducts(list *structpb.ListValue) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("element %d is not a product", i)
		}
		p, err := structToProduct(s)
		if err != nil {
			return nil, fmt.Errorf("failed to decode element %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func checkExact(p domain.Product) error {
	values := map[string]int64{"id": p.ID, "precio": int64(p.Price)}
	if p.Stock != nil {
		values["stock"] = int64(*p.Stock)
	}
	for field, v := range values {
		if v > maxExactNumber || v < -maxExactNumber {
			return fmt.Errorf("%w: %s=%d", errInexactNumber, field, v)
		}
	}
	return nil
}
