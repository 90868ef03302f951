package stub

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"wallet-client/internal/model"
	"wallet-client/pkg/monitor"
	"wallet-client/pkg/validator"
)

const tokenPrefix = "mock-token-"

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// detail replies with the FastAPI-style error body the real service uses.
func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// authRequired resolves the bearer token to a user and stores its ID on the
// context.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header || !strings.HasPrefix(token, tokenPrefix) {
			detail(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		userID := strings.TrimPrefix(token, tokenPrefix)
		if _, ok := h.store.userByID(userID); !ok {
			detail(c, http.StatusUnauthorized, "User not found")
			return
		}

		c.Set("uid", userID)
		c.Next()
	}
}

func (h *Handler) checkPin(c *gin.Context, pin string) bool {
	userID := c.GetString("uid")
	u, ok := h.store.userByID(userID)
	if !ok || len(pin) != 6 || u.Pin != pin {
		detail(c, http.StatusForbidden, "Invalid PIN")
		return false
	}
	return true
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, validator.GetErrorMsg(err))
		return
	}

	user, ok := h.store.createUser(req.Name, req.Email, req.Password)
	if !ok {
		detail(c, http.StatusBadRequest, "Email already exists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User registered", "userId": user.ID})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, validator.GetErrorMsg(err))
		return
	}

	user, ok := h.store.authenticate(req.Email, req.Password)
	if !ok {
		detail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	c.JSON(http.StatusOK, model.Session{Token: tokenPrefix + user.ID, User: user})
}

func (h *Handler) GetWallet(c *gin.Context) {
	if !h.checkPin(c, c.GetHeader("X-Wallet-Pin")) {
		return
	}
	snap, ok := h.store.wallet(c.GetString("uid"))
	if !ok {
		detail(c, http.StatusNotFound, "Wallet not found")
		return
	}
	c.JSON(http.StatusOK, snap)
}

type addMoneyRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Pin    string          `json:"pin" binding:"required"`
}

func (h *Handler) AddMoney(c *gin.Context) {
	var req addMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, validator.GetErrorMsg(err))
		return
	}
	if !req.Amount.IsPositive() {
		detail(c, http.StatusBadRequest, "Invalid amount")
		return
	}
	if !h.checkPin(c, req.Pin) {
		monitor.TransactionsTotal.WithLabelValues("add_money", "rejected").Inc()
		return
	}

	balance, ok := h.store.addMoney(c.GetString("uid"), req.Amount)
	if !ok {
		detail(c, http.StatusNotFound, "Wallet not found")
		return
	}
	monitor.TransactionsTotal.WithLabelValues("add_money", "success").Inc()
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

type transferRequest struct {
	ToUserID string          `json:"toUserId" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Pin      string          `json:"pin" binding:"required"`
}

func (h *Handler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, validator.GetErrorMsg(err))
		return
	}
	if !req.Amount.IsPositive() {
		detail(c, http.StatusBadRequest, "Invalid amount")
		return
	}
	if !h.checkPin(c, req.Pin) {
		monitor.TransactionsTotal.WithLabelValues("transfer", "rejected").Inc()
		return
	}

	outcome, terr := h.store.transfer(c.GetString("uid"), req.ToUserID, req.Amount)
	switch terr {
	case transferLimitExceeded:
		monitor.TransactionsTotal.WithLabelValues("transfer", "rejected").Inc()
		detail(c, http.StatusBadRequest, "Transfer limit exceeded")
		return
	case transferInsufficient:
		monitor.TransactionsTotal.WithLabelValues("transfer", "rejected").Inc()
		detail(c, http.StatusBadRequest, "Insufficient balance")
		return
	case transferNoWallet:
		detail(c, http.StatusNotFound, "Wallet not found")
		return
	}

	monitor.TransactionsTotal.WithLabelValues("transfer", "success").Inc()
	c.JSON(http.StatusOK, model.TransferReceipt{
		TransactionID: outcome.TransactionID,
		Fee:           outcome.Fee,
		TotalDeducted: outcome.TotalDeducted,
	})
}

func (h *Handler) Transactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	txs := h.store.transactions(
		c.GetString("uid"),
		c.Query("status"),
		c.Query("start_date"),
		c.Query("end_date"),
	)

	start := (page - 1) * limit
	end := start + limit
	if start > len(txs) {
		start = len(txs)
	}
	if end > len(txs) {
		end = len(txs)
	}

	data := txs[start:end]
	if data == nil {
		data = []model.Transaction{}
	}
	c.JSON(http.StatusOK, model.TransactionPage{
		Total: len(txs),
		Page:  page,
		Limit: limit,
		Data:  data,
	})
}

func (h *Handler) RecentTransactions(c *gin.Context) {
	txs := h.store.transactions(c.GetString("uid"), "", "", "")
	if len(txs) > 10 {
		txs = txs[:10]
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	c.JSON(http.StatusOK, txs)
}

func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.listUsers())
}

func (h *Handler) BusinessRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.businessRules())
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
