package domain

// Principal is the verified identity behind a request.
type Principal struct {
	UserID    int64
	Role      UserRole
	CompanyID int64
}
