package order

import (
	"go.uber.org/zap"

	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/product"
)

// LogObserver returns an Observer that writes the order summary and one
// entry per line item to the given logger.
func LogObserver(logger *zap.Logger) Observer {
	return func(ord Order, resolved []product.ResolvedLine) {
		logger.Info("new order",
			zap.String("order_id", ord.ID),
			zap.Int("item_count", len(ord.Items)),
			zap.Float64("total_amount", ord.TotalAmount),
			zap.String("created_at", ord.CreatedAt),
		)
		for _, line := range resolved {
			logger.Info("order item",
				zap.String("order_id", ord.ID),
				zap.Int("product_id", line.Product.ID),
				zap.String("product_name", line.Product.Name),
				zap.Int("quantity", line.Quantity),
				zap.Float64("line_total", round2(line.Product.Price*float64(line.Quantity))),
			)
		}
	}
}
