package view

// Element ids of the page regions. Fragments swap by these ids.
const (
	IDUsersRegion        = "users-region"
	IDCreateOverlay      = "create-overlay"
	IDEditOverlay        = "edit-overlay"
	IDDiagnosticPanel    = "diagnostic-panel"
	IDNotificationRegion = "notification-region"
	IDBlockingRegion     = "blocking-region"
	IDRedirectRegion     = "redirect-region"
)
