// internal/services/admin_service.go
package services

import (
	"time"

	"github.com/javajoker/atelier-backend/internal/models"
)

// AdminService aggregates the catalog and inbox for the admin dashboard.
type AdminService struct {
	productService *ProductService
	messageService *MessageService
	now            func() time.Time
}

type AdminDashboardStats struct {
	TotalProducts      int                            `json:"total_products"`
	FeaturedProducts   int                            `json:"featured_products"`
	ProductsByCategory map[models.ProductCategory]int `json:"products_by_category"`
	Uncategorized      int                            `json:"uncategorized_products"`
	TotalMessages      int                            `json:"total_messages"`
	MessagesThisMonth  int                            `json:"messages_this_month"`
	MessagesLastMonth  int                            `json:"messages_last_month"`
	MessageGrowth      float64                        `json:"message_growth"`
	LatestMessageAt    string                         `json:"latest_message_at,omitempty"`
}

func NewAdminService(productService *ProductService, messageService *MessageService) *AdminService {
	return &AdminService{
		productService: productService,
		messageService: messageService,
		now:            time.Now,
	}
}

func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{
		ProductsByCategory: make(map[models.ProductCategory]int, len(models.Categories)),
	}
	for _, category := range models.Categories {
		stats.ProductsByCategory[category] = 0
	}

	// Product statistics
	products, err := s.productService.ListProducts()
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = len(products)
	for _, product := range products {
		if product.Featured {
			stats.FeaturedProducts++
		}
		if product.Category.Valid() {
			stats.ProductsByCategory[product.Category]++
		} else {
			stats.Uncategorized++
		}
	}

	// Message statistics, newest first
	messages, err := s.messageService.ListMessages()
	if err != nil {
		return nil, err
	}
	stats.TotalMessages = len(messages)
	if len(messages) > 0 {
		stats.LatestMessageAt = messages[0].CreatedAt
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	for _, message := range messages {
		created := message.CreatedTime()
		switch {
		case !created.Before(monthStart):
			stats.MessagesThisMonth++
		case !created.Before(lastMonthStart):
			stats.MessagesLastMonth++
		}
	}

	// Growth calculations
	if stats.MessagesLastMonth > 0 {
		stats.MessageGrowth = float64(stats.MessagesThisMonth-stats.MessagesLastMonth) /
			float64(stats.MessagesLastMonth) * 100
	}

	return stats, nil
}
