package http

import (
	"errors"
	"log"
	"net/http"

	"furniture-store/internal/domain"
	"furniture-store/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	checkout *services.CheckoutService
	writer   *services.OrderWriterService
	stock    *services.StockService
	catalog  *services.CatalogService
}

func NewHandler(checkout *services.CheckoutService, writer *services.OrderWriterService, stock *services.StockService, catalog *services.CatalogService) *Handler {
	return &Handler{checkout: checkout, writer: writer, stock: stock, catalog: catalog}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/checkout", h.Checkout)

	r.POST("/customers", h.CreateCustomer)
	r.POST("/orders", h.CreateOrder)
	r.POST("/orders/details", h.CreateOrderLine)
	r.GET("/orders/history", h.OrderHistory)
	r.GET("/orders/history/details", h.OrderHistoryDetails)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.POST("/products", h.CreateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)
	r.PUT("/products/:id/stock", h.AdjustStock)

	r.GET("/types", h.ListTypes)
	r.GET("/materials", h.ListMaterials)
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.PlaceOrderInput{
		Customer: services.CustomerInput{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		DeliveryMethod: domain.DeliveryMethod(req.DeliveryMethod),
		ShippingCost:   req.ShippingCost,
		IdempotencyKey: req.IdempotencyKey,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, services.LineItemInput{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Price:     item.Price,
			Note:      item.Note,
		})
	}

	placed, err := h.checkout.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	for _, line := range placed.Lines {
		h.catalog.InvalidateProduct(c.Request.Context(), line.ProductID)
	}

	resp := CheckoutResponse{
		InvoiceID:  placed.Order.InvoiceID,
		CustomerID: placed.Order.CustomerID,
		TotalPrice: placed.Order.TotalPrice,
	}
	for _, line := range placed.Lines {
		resp.Lines = append(resp.Lines, CheckoutLineResponse{
			LineID:    line.ID,
			ProductID: line.ProductID,
			Qty:       line.Qty,
			Price:     line.Price,
		})
	}

	status := http.StatusCreated
	if placed.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := domain.Customer{ID: req.ID, Name: req.Name, Phone: req.Phone, Address: req.Address}
	if err := h.writer.CreateCustomer(c.Request.Context(), customer); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customerId": req.ID})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.CreateOrderInput{
		InvoiceID:      req.InvoiceID,
		CustomerID:     req.CustomerID,
		TotalPrice:     req.TotalPrice,
		DeliveryMethod: req.DeliveryMethod,
		OrderDate:      req.OrderDate,
	}
	if err := h.writer.CreateOrder(c.Request.Context(), in); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoiceId": req.InvoiceID})
}

func (h *Handler) CreateOrderLine(c *gin.Context) {
	var req CreateOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.CreateOrderLineInput{
		LineID:    req.LineID,
		InvoiceID: req.InvoiceID,
		ProductID: req.ProductID,
		Qty:       req.Qty,
		Price:     req.Price,
		Note:      req.Note,
	}
	if err := h.writer.CreateOrderLine(c.Request.Context(), in); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lineId": req.LineID})
}

func (h *Handler) AdjustStock(c *gin.Context) {
	productID := c.Param("id")

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var adj domain.StockAdjustment
	switch {
	case req.Stock != nil && req.StockChange != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide either 'stock' or 'stockChange', not both"})
		return
	case req.Stock != nil:
		adj = domain.StockSet(*req.Stock)
	case req.StockChange != nil:
		adj = domain.StockDelta(*req.StockChange)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'stock' or 'stockChange' in request body"})
		return
	}

	newStock, err := h.stock.Adjust(c.Request.Context(), productID, adj)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.catalog.InvalidateProduct(c.Request.Context(), productID)
	c.JSON(http.StatusOK, gin.H{"stock": newStock})
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := domain.Product{
		ID:         req.ID,
		Name:       req.Name,
		TypeID:     req.TypeID,
		MaterialID: req.MaterialID,
		Stock:      req.Stock,
		Price:      req.Price,
		ImageURL:   req.ImageURL,
	}
	if err := h.catalog.CreateProduct(c.Request.Context(), product); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"productId": req.ID})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) OrderHistory(c *gin.Context) {
	orders, err := h.catalog.OrderHistory(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) OrderHistoryDetails(c *gin.Context) {
	details, err := h.catalog.OrderHistoryDetails(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.catalog.ListTypes(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *Handler) ListMaterials(c *gin.Context) {
	materials, err := h.catalog.ListMaterials(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

// writeError maps domain failures onto HTTP statuses. Only business
// rejections carry detail to the client; infrastructure failures are logged
// and reported generically.
func (h *Handler) writeError(c *gin.Context, err error) {
	var insufficient *domain.InsufficientStockError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "insufficient stock",
			"productId": insufficient.ProductID,
			"available": insufficient.Available,
		})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, domain.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": "identifier already exists"})
	case errors.Is(err, domain.ErrProductReferenced):
		c.JSON(http.StatusConflict, gin.H{"error": "product is referenced by existing orders"})
	case errors.Is(err, domain.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
