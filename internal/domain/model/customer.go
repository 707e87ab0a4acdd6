package model

// Customer owns orders and may be referenced by generated reports.
type Customer struct {
	ID           int64
	Name         string
	Surname      string
	ContactEmail *string
	ContactPhone *string
}

// FullName joins name and surname for presentation.
func (c Customer) FullName() string {
	return c.Name + " " + c.Surname
}
