package handlers

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/bizedge/bizedge_backend/cmd/docs"
	"github.com/bizedge/bizedge_backend/internal/middleware"
	"github.com/bizedge/bizedge_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
)

// RegisterRoutes sets up the full HTTP surface: root and diagnostics
// endpoints, the rate-limited /api group, and swagger outside production.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerValidatorTagNames()

	r.GET("/", getHome)
	r.GET("/health", getHealth)
	registerDiagnosticsRoutes(r, services.Diagnostics)

	api := r.Group("/api", middleware.RateLimit(newRateLimiter(cfg)))
	registerPartyRoutes(api, services.Party)
	registerProductRoutes(api, services.Product)
	registerInvoiceRoutes(api, services.Invoice)
	registerTransactionRoutes(api, services.Transaction)
	registerInsightsRoutes(api, services.Insights)

	setupSwaggerRoutes(r, cfg)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// getHealth godoc
// @Summary Liveness probe
// @Description Returns OK while the process is up, regardless of database state.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// registerValidatorTagNames makes validation errors report the json
// field name instead of the Go struct field name.
func registerValidatorTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func newRateLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid rate limit format, using default",
			slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		rate = limiter.Rate{Period: time.Minute, Limit: 1000}
	}
	return limiter.New(memory.NewStore(), rate)
}
