package catalog

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// Client calls CatalogService and decodes replies into domain products.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a Client over an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// ListProducts fetches the whole catalog.
func (c *Client) ListProducts(ctx context.Context, opts ...grpc.CallOption) ([]domain.Product, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListProductsMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, statusToDomainError(err)
	}
	return listValueToProducts(out)
}

// GetProduct fetches one product. Unknown ids return domain.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, productID int64, opts ...grpc.CallOption) (*domain.Product, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetProductMethod, wrapperspb.Int64(productID), out, opts...); err != nil {
		return nil, statusToDomainError(err)
	}

	p, err := structToProduct(out)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Greeting fetches the backend greeting.
func (c *Client) Greeting(ctx context.Context, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, GreetingMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return "", statusToDomainError(err)
	}
	return out.GetValue(), nil
}
