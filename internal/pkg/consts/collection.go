package consts

const (
	UsersCollection            = "Users"
	LoanProductsCollection     = "LoanProducts"
	LoanApplicationsCollection = "LoanApplications"
)

const (
	RoleBorrower = "borrower"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Application statuses. "Approved"/"Rejected" keep the capitalisation the
// frontend already renders; "pending" stays lower-case for the same reason.
const (
	StatusPending  = "pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	FeeStatusUnpaid = "unpaid"
	FeeStatusPaid   = "paid"
)

var ValidRoles = []string{RoleBorrower, RoleManager, RoleAdmin}

var ValidStatuses = []string{StatusPending, StatusApproved, StatusRejected}
