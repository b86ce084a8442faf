package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sportshoplabs/sportshop-backend/api/controllers"
	"github.com/sportshoplabs/sportshop-backend/api/middleware"
	"github.com/sportshoplabs/sportshop-backend/api/responses"
	"github.com/sportshoplabs/sportshop-backend/internal/analytics"
	"github.com/sportshoplabs/sportshop-backend/internal/cart"
	"github.com/sportshoplabs/sportshop-backend/internal/catalog"
	"github.com/sportshoplabs/sportshop-backend/internal/orders"
	"github.com/sportshoplabs/sportshop-backend/internal/recommendations"
	"github.com/sportshoplabs/sportshop-backend/pkg/config"
	pkgerrors "github.com/sportshoplabs/sportshop-backend/pkg/errors"
	"github.com/sportshoplabs/sportshop-backend/pkg/logger"
	"github.com/sportshoplabs/sportshop-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	readiness map[string]controllers.Pinger,
	catalogService catalog.Service,
	cartService cart.Service,
	orderService orders.Service,
	recommendationService recommendations.Service,
	analyticsService analytics.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.HTTP),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Identity(logg))

		r.Get("/status", controllers.Status())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(catalogService, logg))
			r.Post("/search", controllers.ProductsSearch(catalogService, logg))
			r.Get("/{productId}", controllers.ProductGet(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Post("/add", controllers.CartAdd(cartService, logg))
			r.Put("/update", controllers.CartUpdate(cartService, logg))
			r.Delete("/clear", controllers.CartClear(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.OrdersCreate(orderService, logg))
			r.Get("/", controllers.OrdersList(orderService, logg))
			r.Get("/{orderId}", controllers.OrderGet(orderService, logg))
			r.Put("/{orderId}/status", controllers.OrderSetStatus(orderService, logg))
			r.Put("/{orderId}/cancel", controllers.OrderCancel(orderService, logg))
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/similar/{productId}", controllers.RecommendationsSimilar(recommendationService, logg))
			r.Get("/products/{productId}", controllers.RecommendationsForProduct(recommendationService, logg))
			r.Get("/user", controllers.RecommendationsForUser(recommendationService, logg))
			r.Get("/popular/{category}", controllers.RecommendationsPopular(recommendationService, logg))
			r.Get("/frequently-bought/{productId}", controllers.RecommendationsFrequentlyBought(recommendationService, logg))
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/product-views", controllers.AnalyticsProductViews(analyticsService, logg))
			r.Get("/sales-by-category", controllers.AnalyticsSalesByCategory(analyticsService, logg))
			r.Get("/user-activity", controllers.AnalyticsUserActivity(analyticsService, logg))
			r.Get("/sales-by-month", controllers.AnalyticsSalesByMonth(analyticsService, logg))
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})

	return r
}
