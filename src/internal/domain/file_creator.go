package domain

// FileCreator renders a statement payload into a password-protected binary
// document. The user secret is the account's natural identifier, known to the
// recipient out-of-band; the owner secret is operator configuration.
type FileCreator interface {
	CreateProtectedPDF(payload StatementPayload, userSecret string) ([]byte, error)
}
