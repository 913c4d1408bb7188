package repositories

// RepositoryProvider holds instances of all entity repositories. It is
// assembled by the storage adapter and consumed by the service container.
type RepositoryProvider struct {
	CostCodeRepo CostCodeRepositoryFacade
	InvoiceRepo  InvoiceRepositoryFacade
	DraftRepo    DraftRepositoryFacade
	ProjectRepo  ProjectRepositoryFacade
	CustomerRepo CustomerRepositoryFacade
	CompanyRepo  CompanyRepositoryFacade
}
