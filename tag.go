package brand

// Tag is implemented by the zero-size discriminant types that tell brands
// apart. BrandName must return a constant; it is used for formatting only and
// its uniqueness is not checked.
type Tag interface {
	comparable
	BrandName() string
}

// Name returns the display name of the discriminant T.
func Name[T Tag]() string {
	var tag T
	return tag.BrandName()
}
