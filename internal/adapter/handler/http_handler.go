package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vqle/catalog-service/internal/core/domain"
	"github.com/vqle/catalog-service/internal/core/service"
)

type HTTPHandler struct {
	orders  *service.OrderService
	catalog *service.CatalogService
	log     *slog.Logger
}

func NewHTTPHandler(orders *service.OrderService, catalog *service.CatalogService, log *slog.Logger) *HTTPHandler {
	return &HTTPHandler{orders: orders, catalog: catalog, log: log}
}

func (h *HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.healthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Post("/orders", h.submitOrder)
		r.Get("/orders/{orderNo}", h.getOrder)
		r.Get("/products", h.searchProducts)
		r.Put("/products/{id}", h.upsertProduct)
		r.Post("/products/{id}/validate", h.validateProduct)
	})

	return r
}

type submitOrderRequest struct {
	RequestID string `json:"request_id,omitempty"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type submitOrderResponse struct {
	Success    bool               `json:"success"`
	OrderNo    string             `json:"order_no,omitempty"`
	Message    string             `json:"message"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

func (h *HTTPHandler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, submitOrderResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	result, err := h.orders.SubmitOrder(r.Context(), req.ProductID, req.Quantity, req.RequestID)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			writeJSON(w, statusForKind(de.Kind), submitOrderResponse{
				Success:    false,
				Message:    de.Message,
				Violations: de.Violations,
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, submitOrderResponse{
			Success: false,
			Message: "internal error",
		})
		return
	}

	writeJSON(w, http.StatusOK, submitOrderResponse{
		Success: true,
		OrderNo: result.OrderNo,
		Message: result.Message,
	})
}

type orderItemView struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type orderView struct {
	ID         string          `json:"id"`
	OrderNo    string          `json:"order_no"`
	Status     string          `json:"status"`
	TotalCents int64           `json:"total_cents"`
	Currency   string          `json:"currency"`
	Items      []orderItemView `json:"items"`
}

func (h *HTTPHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderNo := chi.URLParam(r, "orderNo")

	order, err := h.orders.GetOrder(r.Context(), orderNo)
	if err != nil {
		h.writeError(w, err)
		return
	}

	view := orderView{
		ID:         order.ID,
		OrderNo:    order.OrderNo,
		Status:     string(order.Status),
		TotalCents: order.TotalCents,
		Currency:   order.Currency,
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, orderItemView{
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	writeJSON(w, http.StatusOK, view)
}

type productView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	Stock       int    `json:"stock"`
	StockStatus string `json:"stock_status"`
	Discount    string `json:"discount,omitempty"`
}

func (h *HTTPHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	filters := domain.SearchFilters{
		Query: r.URL.Query().Get("query"),
		Genre: r.URL.Query().Get("genre"),
	}
	if raw := r.URL.Query().Get("max_price_cents"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid max_price_cents"})
			return
		}
		filters.MaxPriceCents = maxPrice
	}

	products, err := h.catalog.SearchProducts(r.Context(), filters)
	if err != nil {
		h.writeError(w, err)
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{
			ID:          p.ID,
			Title:       p.Title,
			Genre:       p.Genre,
			PriceCents:  p.PriceCents,
			Currency:    p.Currency,
			Stock:       p.Stock,
			StockStatus: p.StockStatus(),
			Discount:    p.Discount(),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

type productMutationRequest struct {
	Title      *string `json:"title"`
	Genre      *string `json:"genre"`
	PriceCents *int64  `json:"price_cents"`
	Currency   *string `json:"currency"`
	Stock      *int    `json:"stock"`
}

func (r productMutationRequest) toDomain(id string) domain.ProductMutation {
	return domain.ProductMutation{
		ID:         id,
		Title:      r.Title,
		Genre:      r.Genre,
		PriceCents: r.PriceCents,
		Currency:   r.Currency,
		Stock:      r.Stock,
	}
}

func (h *HTTPHandler) upsertProduct(w http.ResponseWriter, r *http.Request) {
	var req productMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if err := h.catalog.UpsertProduct(r.Context(), req.toDomain(chi.URLParam(r, "id"))); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type validateResponse struct {
	Valid      bool               `json:"valid"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

func (h *HTTPHandler) validateProduct(w http.ResponseWriter, r *http.Request) {
	var req productMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	violations := h.catalog.ValidateProductMutation(req.toDomain(chi.URLParam(r, "id")))
	writeJSON(w, http.StatusOK, validateResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}

func (h *HTTPHandler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		writeJSON(w, statusForKind(de.Kind), map[string]any{
			"message":    de.Message,
			"violations": de.Violations,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInsufficientStock, domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
