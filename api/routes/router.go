package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/shopflow-backend/api/controllers"
	"github.com/angelmondragon/shopflow-backend/api/middleware"
	"github.com/angelmondragon/shopflow-backend/internal/cart"
	"github.com/angelmondragon/shopflow-backend/internal/catalog"
	"github.com/angelmondragon/shopflow-backend/internal/orders"
	"github.com/angelmondragon/shopflow-backend/internal/search"
	"github.com/angelmondragon/shopflow-backend/internal/session"
	"github.com/angelmondragon/shopflow-backend/pkg/config"
	"github.com/angelmondragon/shopflow-backend/pkg/logger"
	"github.com/angelmondragon/shopflow-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	em *metrics.EngineMetrics,
	catalogStore *catalog.Store,
	searchDeb *search.Debouncer,
	cartStore *cart.Store,
	sess *session.Session,
	ledger orders.Ledger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(em),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogSnapshot(catalogStore))
			r.Get("/products", controllers.CatalogProducts(catalogStore))
			r.Post("/category", controllers.CatalogSetCategory(catalogStore, logg))
			r.Post("/search", controllers.CatalogSearch(catalogStore, logg))
			r.Post("/search/typing", controllers.CatalogSearchTyping(searchDeb, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartView(cartStore))
			r.Delete("/", controllers.CartClear(cartStore))
			r.Post("/items", controllers.CartAddItem(catalogStore, cartStore, logg))
			r.Patch("/items/{productId}", controllers.CartAdjustItem(cartStore, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartStore, logg))
		})

		r.Post("/checkout", controllers.CheckoutPlaceOrder(ledger, em, logg))

		r.Route("/session", func(r chi.Router) {
			r.Post("/login", controllers.SessionLogin(sess, logg))
			r.Post("/logout", controllers.SessionLogout(sess, logg))
			r.Get("/profile", controllers.SessionProfile(sess, logg))
			r.Patch("/profile", controllers.SessionUpdateProfile(sess, logg))
			r.Get("/addresses", controllers.SessionAddresses(sess))
			r.Post("/addresses", controllers.SessionAddAddress(sess, logg))
			r.Delete("/addresses/{addressId}", controllers.SessionRemoveAddress(sess, logg))
			r.Get("/orders", controllers.SessionOrders(sess))
		})
	})

	return r
}
