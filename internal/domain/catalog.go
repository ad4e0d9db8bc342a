package domain

// ProductKind discriminates catalog products
type ProductKind string

const (
	KindPhysical ProductKind = "physical"
	KindDigital  ProductKind = "digital"
	KindService  ProductKind = "service"
)

// CatalogService is the read model of a bookable service:
// a product of kind "service" joined with its service details
type CatalogService struct {
	ID              string
	ShopID          string
	Name            string
	Kind            ProductKind
	DurationMinutes int
	MaxConcurrent   int
	RequiresBooking bool
	IsActive        bool
}

// IsService returns true if the product can be booked as a service
func (s *CatalogService) IsService() bool {
	return s.Kind == KindService
}
