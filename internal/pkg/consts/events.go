package consts

// Kafka event names published on the application lifecycle topic.
const (
	EventApplicationCreated   = "application.created"
	EventApplicationDecided   = "application.decided"
	EventApplicationPaid      = "application.payment_recorded"
	EventApplicationCancelled = "application.cancelled"
)

// Capabilities checked on administrative routes.
const (
	CapabilityManageProducts = "products:manage"
	CapabilityManageUsers    = "users:manage"
	CapabilityViewReports    = "reports:view"
	CapabilityDecide         = "applications:decide"
)
