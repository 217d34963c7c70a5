// Package validation holds the stateless input checks shared by catalog
// maintenance and order submission. Functions here never touch storage and
// never mutate their input; every failing rule appends its own violation so
// callers see all problems at once.
package validation

import "github.com/vqle/catalog-service/internal/core/domain"

const minTitleLength = 3

// ValidateProduct checks a catalog create/update candidate. Absent (nil)
// fields are skipped.
func ValidateProduct(m domain.ProductMutation) []domain.Violation {
	var violations []domain.Violation

	if m.Title != nil && len(*m.Title) < minTitleLength {
		violations = append(violations, domain.Violation{
			Field:   "title",
			Message: "title must be at least 3 characters",
		})
	}

	if m.PriceCents != nil && *m.PriceCents < 0 {
		violations = append(violations, domain.Violation{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}

	if m.Stock != nil && *m.Stock < 0 {
		violations = append(violations, domain.Violation{
			Field:   "stock",
			Message: "stock cannot be negative",
		})
	}

	return violations
}

// ValidateOrderRequest checks the shape of a submission. Whether the product
// exists is the coordinator's concern, not a validation concern.
func ValidateOrderRequest(productID string, quantity int) []domain.Violation {
	var violations []domain.Violation

	if productID == "" {
		violations = append(violations, domain.Violation{
			Field:   "productId",
			Message: "productId is required",
		})
	}

	if quantity <= 0 {
		violations = append(violations, domain.Violation{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}

	return violations
}
