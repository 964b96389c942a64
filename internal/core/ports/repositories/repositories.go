package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PartyRepo       PartyRepositoryFacade
	ProductRepo     ProductRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	InsightsRepo    InsightsRepositoryFacade
	DiagnosticsRepo DiagnosticsRepositoryFacade
}
