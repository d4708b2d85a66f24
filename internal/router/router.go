package router

import (
	"net/http"
	"strings"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/handler"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Catalogue reads, the session cart and checkout are public; catalogue
// writes and order management require the admin API key.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	admin := middleware.APIKeyAuth(adminAPIKey, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Path == "/api/products" || r.URL.Path == "/api/products/"

		switch {
		case r.Method == http.MethodGet && collection:
			productHandler.GetAll(w, r)
		case r.Method == http.MethodGet:
			productHandler.GetByID(w, r)
		case r.Method == http.MethodPost && collection:
			admin(http.HandlerFunc(productHandler.Create)).ServeHTTP(w, r)
		case r.Method == http.MethodPut && !collection:
			admin(http.HandlerFunc(productHandler.Update)).ServeHTTP(w, r)
		case r.Method == http.MethodDelete && !collection:
			admin(http.HandlerFunc(productHandler.Delete)).ServeHTTP(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes: the whole cart, its item collection, and single items
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cartHandler.Get(w, r)
		case http.MethodDelete:
			cartHandler.Clear(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("/api/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			cartHandler.SetQuantity(w, r)
		case http.MethodDelete:
			cartHandler.RemoveItem(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	mux.HandleFunc("/api/checkout", cartHandler.Checkout)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"

		switch {
		case r.Method == http.MethodPost && collection:
			orderHandler.Create(w, r)
		case r.Method == http.MethodGet && collection:
			admin(http.HandlerFunc(orderHandler.List)).ServeHTTP(w, r)
		case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/status"):
			admin(http.HandlerFunc(orderHandler.UpdateStatus)).ServeHTTP(w, r)
		case r.Method == http.MethodGet:
			orderHandler.GetByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var h http.Handler = mux
	h = middleware.Session(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
