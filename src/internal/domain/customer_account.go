package domain

// CustomerAccount is owned by the account-management surface; the statement
// pipeline only ever reads it.
type CustomerAccount struct {
	AccountID       int64
	FirstName       string
	LastName        string
	IDNumber        string
	EmailAddress    string
	CellphoneNumber string
}
