package service

// OrderCodeGenerator produces candidate display codes. Uniqueness is enforced by the store.
type OrderCodeGenerator interface {
	Next(year int) string
}
