package constants

const (
	MsgInvalidCredentials   = "invalid email or password"
	MsgWrongPassword        = "current password is incorrect"
	MsgForbidden            = "forbidden"
	MsgInvalidBody          = "invalid request body"
	MsgInvalidID            = "invalid id"
	MsgInternal             = "internal server error"
	MsgPostingNotFound      = "posting not found"
	MsgEnrollmentNotFound   = "enrollment not found"
	MsgApplicationNotFound  = "application not found"
	MsgAccountNotFound      = "account not found"
	MsgRequestNotFound      = "organization request not found"
	MsgAlreadyEnrolled      = "volunteer has already applied to this posting"
	MsgApplicationResolved  = "application is not pending"
	MsgVolunteerEmailTaken  = "a volunteer with this email already exists"
	MsgAdminEmailTaken      = "an admin with this email already exists"
	MsgOrganizationExists   = "an organization with this email already exists"
	MsgRequestAlreadyExists = "an organization request with this email is already pending"
	MsgTooManyRequests      = "too many requests"
	MsgUnauthorized         = "authentication required"
)
