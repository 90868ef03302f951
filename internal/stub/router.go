package stub

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wallet-client/pkg/monitor"
)

// NewRouter wires the stub Wallet Service routes onto a gin engine.
// withMetrics also registers the prometheus middleware and /metrics;
// tests pass false so registration stays single-shot per process.
func NewRouter(h *Handler, withMetrics bool) *gin.Engine {
	r := gin.Default()

	if withMetrics {
		monitor.Init()
		r.Use(monitor.PrometheusMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/health", h.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	r.GET("/users", h.ListUsers)
	r.GET("/config/business-rules", h.BusinessRules)

	wallet := r.Group("/wallet", h.authRequired())
	{
		wallet.GET("", h.GetWallet)
		wallet.POST("/add-money", h.AddMoney)
		wallet.POST("/transfer", h.Transfer)
	}

	txs := r.Group("/transactions", h.authRequired())
	{
		txs.GET("", h.Transactions)
		txs.GET("/recent", h.RecentTransactions)
	}

	return r
}
