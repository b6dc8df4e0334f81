package order

import (
	"strings"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
)

// ErrServiceCategoryIsNotConstructed indicates that a ServiceCategory was not
// created through NewServiceCategory.
var ErrServiceCategoryIsNotConstructed = errs.NewValueIsRequiredError(
	"ServiceCategory must be created via NewServiceCategory",
)

// ServiceCategory is a value object naming the kind of work an order asks
// for (for example "plumbing" or "painting"). The catalog of categories and
// their presentation metadata (icons, colors, popularity) live outside the
// core; here a category is just a validated, comparable name that crew
// specialties are matched against.
type ServiceCategory struct {
	name string

	guard kernel.ConstructorGuard
}

// NewServiceCategory creates a ServiceCategory from its name.
// The name is trimmed and must not be empty.
func NewServiceCategory(name string) (ServiceCategory, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ServiceCategory{}, errs.NewValueIsRequiredError("category name")
	}

	return ServiceCategory{
		name:  trimmed,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Name returns the category name.
func (c ServiceCategory) Name() string {
	return c.name
}

// IsEqual compares two categories by name, case-insensitively.
func (c ServiceCategory) IsEqual(other ServiceCategory) bool {
	return strings.EqualFold(c.name, other.name)
}

// String returns the category name.
func (c ServiceCategory) String() string {
	return c.name
}

// Validate checks that the category was created through NewServiceCategory.
func (c ServiceCategory) Validate() error {
	return c.guard.Validate(ErrServiceCategoryIsNotConstructed)
}
