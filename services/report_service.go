package services

import (
	"sort"
	"strings"
	"time"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/repository"
)

// DateLayout is the calendar date format used by reports
const DateLayout = "2006-01-02"

// UncategorizedCategory is reported for items whose category cannot be determined
const UncategorizedCategory = "uncategorized"

// ZReportItem aggregates one menu item, by name, across the day's paid orders
type ZReportItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// OrderTypeSummary is the count and revenue of one order type
type OrderTypeSummary struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// StatusBreakdown counts orders per status
type StatusBreakdown struct {
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Served    int `json:"served"`
	Paid      int `json:"paid"`
}

func (b *StatusBreakdown) add(status models.OrderStatus) {
	switch status {
	case models.OrderStatusPending:
		b.Pending++
	case models.OrderStatusPreparing:
		b.Preparing++
	case models.OrderStatusReady:
		b.Ready++
	case models.OrderStatusServed:
		b.Served++
	case models.OrderStatusPaid:
		b.Paid++
	}
}

// OrderTypeBreakdown splits the report by dine-in and delivery
type OrderTypeBreakdown struct {
	DineIn   OrderTypeSummary `json:"dine_in"`
	Delivery OrderTypeSummary `json:"delivery"`
}

// ZReport is the end-of-day summary of paid orders created on Date
type ZReport struct {
	Date               string             `json:"date"`
	GeneratedAt        time.Time          `json:"generated_at"`
	TotalOrders        int                `json:"total_orders"`
	TotalRevenue       float64            `json:"total_revenue"`
	Items              []ZReportItem      `json:"items"`
	CategoryBreakdown  map[string]int     `json:"category_breakdown"`
	StatusBreakdown    StatusBreakdown    `json:"status_breakdown"`
	OrderTypeBreakdown OrderTypeBreakdown `json:"order_type_breakdown"`
}

// ReportService builds end-of-day reports from the order ledger
type ReportService struct {
	store    repository.Store
	now      func() time.Time
	location *time.Location
}

// NewReportService creates a report service using server local time
func NewReportService(store repository.Store) *ReportService {
	return &ReportService{store: store, now: time.Now, location: time.Local}
}

// WithClock overrides the clock and time zone used for default dates and timestamps
func (s *ReportService) WithClock(now func() time.Time, location *time.Location) *ReportService {
	s.now = now
	s.location = location
	return s
}

// GetZReport aggregates paid orders whose creation date is date (YYYY-MM-DD).
// An empty date means today. The date is matched as text against each order's
// creation date, so a malformed date yields an empty report rather than an error.
// Orders are selected by creation date, not by when they were paid.
func (s *ReportService) GetZReport(date string) (*ZReport, error) {
	now := s.now()
	date = strings.TrimSpace(date)
	if date == "" {
		date = businessDate(now, s.location)
	}

	paid, err := s.store.Orders().ListByStatus(models.OrderStatusPaid)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	for _, order := range paid {
		if businessDate(order.CreatedAt, s.location) == date {
			orders = append(orders, order)
		}
	}

	menuCategories, err := s.menuCategoriesByName()
	if err != nil {
		return nil, err
	}

	report := &ZReport{
		Date:              date,
		GeneratedAt:       now,
		Items:             []ZReportItem{},
		CategoryBreakdown: map[string]int{},
	}

	itemIndex := map[string]int{}
	for _, order := range orders {
		report.TotalOrders++
		report.TotalRevenue += order.TotalPrice
		report.StatusBreakdown.add(order.Status)

		switch order.OrderType {
		case models.OrderTypeDelivery:
			report.OrderTypeBreakdown.Delivery.Count++
			report.OrderTypeBreakdown.Delivery.Revenue += order.TotalPrice
		default:
			report.OrderTypeBreakdown.DineIn.Count++
			report.OrderTypeBreakdown.DineIn.Revenue += order.TotalPrice
		}

		for _, item := range order.Items {
			category := item.Category
			if category == "" {
				category = menuCategories[item.Name]
			}
			if category == "" {
				category = UncategorizedCategory
			}

			idx, seen := itemIndex[item.Name]
			if !seen {
				idx = len(report.Items)
				itemIndex[item.Name] = idx
				report.Items = append(report.Items, ZReportItem{Name: item.Name, Category: category})
			}
			report.Items[idx].Quantity += item.Quantity
			report.Items[idx].Revenue += item.Subtotal()

			report.CategoryBreakdown[category] += item.Quantity
		}
	}

	sort.SliceStable(report.Items, func(i, j int) bool {
		return report.Items[i].Quantity > report.Items[j].Quantity
	})

	return report, nil
}

// menuCategoriesByName maps current menu item names to their category slug.
// Used for old order items saved without a category.
func (s *ReportService) menuCategoriesByName() (map[string]string, error) {
	items, err := s.store.MenuItems().List()
	if err != nil {
		return nil, err
	}

	categories := make(map[string]string, len(items))
	for _, item := range items {
		if _, ok := categories[item.Name]; !ok {
			categories[item.Name] = item.Category
		}
	}
	return categories, nil
}

// businessDate formats t as a calendar date in loc
func businessDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}
