package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/queries/list_products"
)

// Handler implements CatalogServiceServer. It's a thin coordinator that delegates to queries.
type Handler struct {
	getProduct   *get_product.Query
	listProducts *list_products.Query
	logger       *zap.Logger
}

// NewHandler creates a new gRPC catalog handler.
func NewHandler(getProduct *get_product.Query, listProducts *list_products.Query, logger *zap.Logger) *Handler {
	return &Handler{
		getProduct:   getProduct,
		listProducts: listProducts,
		logger:       logger,
	}
}

// ListProducts returns the whole catalog in stored order.
func (h *Handler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	products, err := h.listProducts.Execute(ctx)
	if err != nil {
		h.logger.Error("list products failed", zap.Error(err))
		return nil, mapDomainErrorToGRPC(err)
	}

	list, err := productsToListValue(products)
	if err != nil {
		h.logger.Error("failed to encode products", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return list, nil
}

// GetProduct returns one product by id.
func (h *Handler) GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "product id is required")
	}

	product, err := h.getProduct.Execute(ctx, &get_product.Request{ProductID: req.GetValue()})
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			h.logger.Error("get product failed", zap.Int64("product_id", req.GetValue()), zap.Error(err))
		}
		return nil, mapDomainErrorToGRPC(err)
	}

	s, err := productToStruct(*product)
	if err != nil {
		h.logger.Error("failed to encode product", zap.Int64("product_id", product.ID), zap.Error(err))
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return s, nil
}

// Greeting returns the backend greeting.
func (h *Handler) Greeting(_ context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(domain.GreetingMessage), nil
}
