package constants

const (
	// ContextKeyUser is the gin context key holding the authenticated
	// *models.User.
	ContextKeyUser = "currentUser"

	// AdminUsername and AdminDefaultPassword are the bootstrap credentials
	// ensured by initdb and at server startup.
	AdminUsername        = "admin"
	AdminDefaultPassword = "admin123"
	AdminRole            = "admin"
)
