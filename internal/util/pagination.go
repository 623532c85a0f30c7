package util

// Calculate clamps a page/size pair and turns it into an offset and limit.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	from = (page - 1) * size
	return from, size
}
