package contracts

type Authorizer interface {
	Authorize(accountType, method, path string) (bool, error)
}
