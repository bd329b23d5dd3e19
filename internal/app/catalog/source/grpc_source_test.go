package source

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/repo"
	"github.com/light-bringer/furniture-catalog/internal/transport/grpc/catalog"
)

func TestGRPCSource_FetchProducts(t *testing.T) {
	rm, err := repo.NewSeedReadModel()
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	catalog.RegisterCatalogServiceServer(srv, catalog.NewHandler(get_product.NewQuery(rm), list_products.NewQuery(rm), zap.NewNop()))
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	products, err := NewGRPCSource(conn, 5*time.Second).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 11)
	assert.Equal(t, "Aparador Nórdico", products[0].Name)

	srv.Stop()
	_, err = NewGRPCSource(conn, time.Second).FetchProducts(context.Background())
	assert.ErrorIs(t, err, domain.ErrProductsUnavailable)
}
