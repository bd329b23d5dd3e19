package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

var (
	terracotta = lipgloss.Color("#A0582C")
	muted      = lipgloss.Color("#8A8178")
	danger     = lipgloss.Color("#B3261E")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(terracotta)
	nameStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	priceStyle   = lipgloss.NewStyle().Foreground(terracotta)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
	noticeStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(terracotta).
			Padding(0, 1)
)

const emptyResultsText = "No encontramos productos con esos filtros."

func renderProducts(w io.Writer, products []domain.Product, summary domain.CartSummary) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Catálogo (%d)", len(products))))
	if len(products) == 0 {
		fmt.Fprintln(w, mutedStyle.Render(emptyResultsText))
	}
	for _, p := range products {
		fmt.Fprintf(w, "%4d  %s  %s  %s\n",
			p.ID,
			nameStyle.Render(p.Name),
			priceStyle.Render(p.Price.String()),
			mutedStyle.Render(p.Category+" · "+stockLabel(p)),
		)
	}
	fmt.Fprintln(w, mutedStyle.Render(cartBadge(summary)))
}

func renderDetail(w io.Writer, p domain.Product, quantity int) {
	fmt.Fprintln(w, headingStyle.Render(p.Name))
	fmt.Fprintln(w, p.Description)
	fmt.Fprintf(w, "%s  %s\n", priceStyle.Render(p.Price.String()), mutedStyle.Render(stockLabel(p)))
	fmt.Fprintf(w, "Categoría: %s\n", p.Category)
	if !p.SoldOut() {
		fmt.Fprintf(w, "Cantidad sugerida: %d\n", quantity)
	}
}

func renderCart(w io.Writer, lines []domain.CartLine, summary domain.CartSummary) {
	fmt.Fprintln(w, headingStyle.Render("Tu carrito"))
	if len(lines) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("El carrito está vacío."))
		return
	}
	for _, l := range lines {
		row := fmt.Sprintf("%4d  %s  x%d  %s",
			l.ID,
			nameStyle.Render(l.Name),
			l.Quantity,
			priceStyle.Render(l.Subtotal().String()),
		)
		if l.OutOfStock() {
			row += "  " + errorStyle.Render("Sin stock")
		}
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w, strings.Repeat("─", 32))
	fmt.Fprintf(w, "Total (%d): %s\n", summary.Quantity, priceStyle.Render(summary.Total.String()))
}

func renderNotice(w io.Writer, text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(w, noticeStyle.Render(text))
}

func stockLabel(p domain.Product) string {
	n, known := p.StockLimit()
	switch {
	case !known:
		return "Consultar stock"
	case n <= 0:
		return "Sin stock"
	default:
		return fmt.Sprintf("Stock: %d", n)
	}
}

func cartBadge(summary domain.CartSummary) string {
	return fmt.Sprintf("Carrito: %d · %s", summary.Quantity, summary.Total.String())
}
