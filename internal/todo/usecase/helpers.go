package usecase

// coalesce returns the first non-empty string, used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
