package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/queries/list_products"
)

const maxBodyBytes = 1 << 20

// CatalogHandler serves the catalog API and the storefront files.
type CatalogHandler struct {
	getProduct   *get_product.Query
	listProducts *list_products.Query
	logger       *zap.Logger
	publicDir    string
	enableEcho   bool
}

// NewCatalogHandler creates a new HTTP catalog handler.
func NewCatalogHandler(
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	logger *zap.Logger,
	publicDir string,
	enableEcho bool,
) *CatalogHandler {
	return &CatalogHandler{
		getProduct:   getProduct,
		listProducts: listProducts,
		logger:       logger,
		publicDir:    publicDir,
		enableEcho:   enableEcho,
	}
}

// Routes returns the complete handler chain: CORS, request logging and routing.
func (h *CatalogHandler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/productos", h.handleListProducts)
	mux.HandleFunc("GET /api/productos/{id}", h.handleGetProduct)
	mux.HandleFunc("GET /api/greeting", h.handleGreeting)
	mux.HandleFunc("POST /api/contacto", h.handleContact)
	if h.enableEcho {
		mux.HandleFunc("POST /api/echo", h.handleEcho)
	}
	mux.HandleFunc("/api", h.handleAPINotFound)
	mux.HandleFunc("/api/", h.handleAPINotFound)
	mux.Handle("/", spaHandler{dir: h.publicDir})

	return CORS(RequestLogger(h.logger)(mux))
}

func (h *CatalogHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listProducts.Execute(r.Context())
	if err != nil {
		h.logger.Error("list products failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "Catálogo no disponible")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, domain.ProductNotFoundMessage)
		return
	}

	product, err := h.getProduct.Execute(r.Context(), &get_product.Request{ProductID: id})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, domain.ProductNotFoundMessage)
			return
		}
		h.logger.Error("get product failed", zap.Int64("product_id", id), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "Catálogo no disponible")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) handleGreeting(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": domain.GreetingMessage})
}

// handleEcho returns the parsed JSON body. A body that is not JSON echoes null.
func (h *CatalogHandler) handleEcho(w http.ResponseWriter, r *http.Request) {
	var body interface{}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err == nil {
		if err := json.Unmarshal(data, &body); err != nil {
			body = nil
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"youSent": body})
}

// handleContact acknowledges a contact form submission. Nothing is stored.
func (h *CatalogHandler) handleContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	req.normalize()
	if reason := req.validate(); reason != "" {
		writeError(w, http.StatusBadRequest, reason)
		return
	}

	h.logger.Info("contact message received",
		zap.String("nombre", req.Nombre),
		zap.String("email", req.Email),
		zap.Int("mensaje_len", len([]rune(req.Mensaje))),
	)
	writeJSON(w, http.StatusOK, map[string]string{"message": domain.ContactThanksMessage})
}

func (h *CatalogHandler) handleAPINotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "API endpoint no encontrado")
}
