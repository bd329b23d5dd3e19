package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

func TestStockLabel(t *testing.T) {
	tests := []struct {
		name  string
		stock *int
		want  string
	}{
		{name: "unknown", stock: nil, want: "Consultar stock"},
		{name: "sold out", stock: domain.StockOf(0), want: "Sin stock"},
		{name: "available", stock: domain.StockOf(4), want: "Stock: 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stockLabel(domain.Product{Stock: tt.stock}))
		})
	}
}

func TestRenderProducts(t *testing.T) {
	t.Run("lists products and the cart badge", func(t *testing.T) {
		var buf bytes.Buffer
		products := []domain.Product{
			{ID: 1, Name: "Aparador Nórdico", Price: 189000, Stock: domain.StockOf(4), Category: "Storage"},
		}

		renderProducts(&buf, products, domain.CartSummary{Quantity: 2, Total: 378000})

		out := buf.String()
		assert.Contains(t, out, "Catálogo (1)")
		assert.Contains(t, out, "Aparador Nórdico")
		assert.Contains(t, out, "$ 189.000")
		assert.Contains(t, out, "Carrito: 2 · $ 378.000")
	})

	t.Run("empty result", func(t *testing.T) {
		var buf bytes.Buffer
		renderProducts(&buf, nil, domain.CartSummary{})
		assert.Contains(t, buf.String(), emptyResultsText)
	})
}

func TestRenderCart(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		var buf bytes.Buffer
		renderCart(&buf, nil, domain.CartSummary{})
		assert.Contains(t, buf.String(), "El carrito está vacío.")
	})

	t.Run("lines, warning and total", func(t *testing.T) {
		var buf bytes.Buffer
		lines := []domain.CartLine{
			{Product: domain.Product{ID: 3, Name: "Mesa Ratona Río", Price: 110000, Stock: domain.StockOf(6)}, Quantity: 2},
			{Product: domain.Product{ID: 7, Name: "Silla Eames", Price: 50000, Stock: domain.StockOf(0)}, Quantity: 1},
		}

		renderCart(&buf, lines, domain.CartSummary{Quantity: 3, Total: 270000})

		out := buf.String()
		assert.Contains(t, out, "Mesa Ratona Río")
		assert.Contains(t, out, "$ 220.000")
		assert.Contains(t, out, "Sin stock")
		assert.Contains(t, out, "Total (3): $ 270.000")
	})
}

func TestRenderNotice(t *testing.T) {
	var buf bytes.Buffer
	renderNotice(&buf, "")
	assert.Empty(t, buf.String())

	renderNotice(&buf, "Silla agregado al carrito")
	assert.Contains(t, buf.String(), "Silla agregado al carrito")
}
