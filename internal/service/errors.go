package service

// Error taxonomy: handlers map NotFoundError → 404 and ConflictError → 400;
// anything else is a store failure surfaced as 500.

type NotFoundError struct{ msg string }

func (e *NotFoundError) Error() string { return e.msg }

type ConflictError struct{ msg string }

func (e *ConflictError) Error() string { return e.msg }

var (
	ErrCategoryNotFound      = &NotFoundError{"Category not found"}
	ErrProductNotFound       = &NotFoundError{"Product not found"}
	ErrInventoryNotFound     = &NotFoundError{"Inventory not found"}
	ErrDuplicateCategoryName = &ConflictError{"Category with this name already exists"}
	ErrCategoryHasProducts   = &ConflictError{"Cannot delete category with associated products"}
	ErrDuplicateInventory    = &ConflictError{"Inventory already exists for this product"}
)
