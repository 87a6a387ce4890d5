package repo

// MovementFilter paginates a product's movement log.
type MovementFilter struct {
	Offset *int
	Limit  *int
}
