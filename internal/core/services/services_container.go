package services

import (
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		CostCode: NewCostCodeService(repos.CostCodeRepo),
		Draft:    NewDraftService(repos.DraftRepo, repos.InvoiceRepo, repos.CostCodeRepo, repos.ProjectRepo),
		Invoice:  NewInvoiceService(repos.InvoiceRepo, repos.CostCodeRepo, repos.ProjectRepo, repos.CompanyRepo),
		Project:  NewProjectService(repos.ProjectRepo),
		Customer: NewCustomerService(repos.CustomerRepo, repos.ProjectRepo),
		Company:  NewCompanyService(repos.CompanyRepo),
	}
}
