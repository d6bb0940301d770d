package services

import (
	"sort"

	"starlitsips/internal/repositories"
)

// ItemSales is the revenue total for one menu item.
type ItemSales struct {
	Item  string  `json:"item"`
	Total float64 `json:"total"`
}

// SizeSales is the revenue total and mean order value for one cup size.
type SizeSales struct {
	Size         string  `json:"size"`
	Total        float64 `json:"total"`
	AverageTotal float64 `json:"average_total"`
}

// ItemSizeSales is the revenue total for one (item, size) pair.
type ItemSizeSales struct {
	Item  string  `json:"item"`
	Size  string  `json:"size"`
	Total float64 `json:"total"`
}

// SalesReport aggregates the full order history. It is recomputed from
// scratch on every request; the volumes here do not justify incremental
// aggregation.
type SalesReport struct {
	OrderCount      int             `json:"order_count"`
	SalesByItem     []ItemSales     `json:"sales_by_item"`
	SalesBySize     []SizeSales     `json:"sales_by_size"`
	SalesByItemSize []ItemSizeSales `json:"sales_by_item_size"`
}

// ReportService computes read-side sales aggregations over the order history.
type ReportService struct {
	orderRepo repositories.OrderRepository
}

// NewReportService creates a new ReportService.
func NewReportService(orderRepo repositories.OrderRepository) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
	}
}

// BuildSalesReport groups the complete order list by item, by size and by
// (item, size). An empty history yields a report with zero rows, not an error.
func (s *ReportService) BuildSalesReport() (*SalesReport, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	byItem := make(map[string]float64)
	bySizeTotal := make(map[string]float64)
	bySizeCount := make(map[string]int)
	type itemSize struct{ item, size string }
	byItemSize := make(map[itemSize]float64)

	for _, order := range orders {
		byItem[order.Item] += order.Total
		bySizeTotal[order.Size] += order.Total
		bySizeCount[order.Size]++
		byItemSize[itemSize{order.Item, order.Size}] += order.Total
	}

	report := &SalesReport{OrderCount: len(orders)}

	for item, total := range byItem {
		report.SalesByItem = append(report.SalesByItem, ItemSales{Item: item, Total: total})
	}
	sort.Slice(report.SalesByItem, func(i, j int) bool {
		return report.SalesByItem[i].Item < report.SalesByItem[j].Item
	})

	for size, total := range bySizeTotal {
		report.SalesBySize = append(report.SalesBySize, SizeSales{
			Size:         size,
			Total:        total,
			AverageTotal: total / float64(bySizeCount[size]),
		})
	}
	sort.Slice(report.SalesBySize, func(i, j int) bool {
		return report.SalesBySize[i].Size < report.SalesBySize[j].Size
	})

	for key, total := range byItemSize {
		report.SalesByItemSize = append(report.SalesByItemSize, ItemSizeSales{
			Item:  key.item,
			Size:  key.size,
			Total: total,
		})
	}
	sort.Slice(report.SalesByItemSize, func(i, j int) bool {
		a, b := report.SalesByItemSize[i], report.SalesByItemSize[j]
		if a.Item != b.Item {
			return a.Item < b.Item
		}
		return a.Size < b.Size
	})

	return report, nil
}
