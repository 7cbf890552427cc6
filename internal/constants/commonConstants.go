package constants

import "time"

type (
	APIStatus   string
	CachePrefix string
	MailKind    string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixPosting CachePrefix = "posting:"
)

const (
	MailOrganizationAccepted MailKind = "organization_accepted"
	MailOrganizationRejected MailKind = "organization_rejected"
)

const (
	TokenIssuer     = "volunteerhub"
	DefaultTokenTTL = 7 * 24 * time.Hour

	GeneratedPasswordLength = 16

	MailStream        = "mail:outbox"
	MailConsumerGroup = "mail-workers"
)
