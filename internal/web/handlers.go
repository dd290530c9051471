package web

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/safar/techstore/internal/database"
)

type Handler struct {
	store  Store
	tmpl   *template.Template
	logger *log.Logger
}

func NewHandler(store Store, logger *log.Logger) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{store: store, tmpl: tmpl, logger: logger}, nil
}

func (h *Handler) Register(r *chi.Mux) {
	r.Get("/", h.home)
	r.Get("/products", h.products)
	r.Get("/product/{id}", h.productDetail)
	r.Post("/order", h.placeOrder)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.notFound(w)
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "home.html", pageData{Title: "Premium Electronics"})
}

func (h *Handler) products(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, "products.html", pageData{
		Title:    "Premium Products",
		Flash:    popFlash(w, r),
		Products: products,
	})
}

func (h *Handler) productDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		h.notFound(w)
		return
	}

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, "product_detail.html", pageData{
		Title:   product.Name,
		Product: product,
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, "We could not read the order form.")
		return
	}

	customerName := strings.TrimSpace(r.PostFormValue("customer_name"))
	if customerName == "" {
		h.badRequest(w, "Please tell us your name.")
		return
	}

	productID, err := strconv.ParseInt(r.PostFormValue("product_id"), 10, 64)
	if err != nil || productID < 1 {
		h.badRequest(w, "The order referenced an invalid product.")
		return
	}

	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil || quantity < 1 {
		h.badRequest(w, "Quantity must be a positive whole number.")
		return
	}

	_, err = h.store.PlaceOrder(r.Context(), customerName, productID, quantity)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, r, err)
		return
	}

	setFlash(w, "Order placed successfully!")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) notFound(w http.ResponseWriter) {
	h.render(w, http.StatusNotFound, "404.html", pageData{Title: "Page Not Found"})
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	h.render(w, http.StatusBadRequest, "400.html", pageData{Title: "Bad Request", Message: message})
}

// internalError logs the failure server-side and sends the generic 500 page.
// The response body never carries error text, stack traces or version info.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logf("request %s: %s %s: %v", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, err)
	h.render(w, http.StatusInternalServerError, "500.html", pageData{Title: "Server Error"})
}

func (h *Handler) logf(format string, args ...any) {
	h.logger.Printf(format, args...)
}
