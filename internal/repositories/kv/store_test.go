package kv

import (
	"context"
	"testing"

	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LoadAbsentKey(t *testing.T) {
	store := NewMemoryStore()

	var out []domain.CostCode
	found, err := store.Load(context.Background(), portsrepo.KeyCostCodes, &out)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, out)
}

func TestMemoryStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	in := []domain.CostCode{{CostCodeID: "cc-1", Code: "09 29 00", Title: "Gypsum Board"}}
	require.NoError(t, store.Save(ctx, portsrepo.KeyCostCodes, in))

	var out []domain.CostCode
	found, err := store.Load(ctx, portsrepo.KeyCostCodes, &out)

	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, out, 1)
	assert.Equal(t, "09 29 00", out[0].Code)
}

func TestMemoryStore_MalformedValueTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, portsrepo.KeyInvoices, []domain.Invoice{{InvoiceID: "inv-1"}}))
	store.Corrupt(portsrepo.KeyInvoices)

	var out []domain.Invoice
	found, err := store.Load(ctx, portsrepo.KeyInvoices, &out)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(t.TempDir() + "/costbook.db")
	require.NoError(t, err)
	defer store.Close()

	in := []domain.Project{{ProjectID: "p1", Name: "Main St Office"}}
	require.NoError(t, store.Save(ctx, portsrepo.KeyProjects, in))

	var out []domain.Project
	found, err := store.Load(ctx, portsrepo.KeyProjects, &out)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, out, 1)
	assert.Equal(t, "Main St Office", out[0].Name)

	// Saves replace the previous value under the key.
	require.NoError(t, store.Save(ctx, portsrepo.KeyProjects, []domain.Project{}))
	out = nil
	found, err = store.Load(ctx, portsrepo.KeyProjects, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, out)
}

func TestSQLiteStore_AbsentKey(t *testing.T) {
	store, err := NewSQLiteStore(t.TempDir() + "/costbook.db")
	require.NoError(t, err)
	defer store.Close()

	var out []domain.Invoice
	found, err := store.Load(context.Background(), portsrepo.KeyInvoices, &out)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepositories_DefaultToEmptySlices(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewMemoryStore())

	costCodes, err := repos.CostCodeRepo.FindCostCodes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, costCodes)
	assert.Empty(t, costCodes)

	invoices, err := repos.InvoiceRepo.FindInvoices(ctx)
	require.NoError(t, err)
	assert.NotNil(t, invoices)
	assert.Empty(t, invoices)

	company, err := repos.CompanyRepo.FindCompany(ctx)
	require.NoError(t, err)
	assert.Nil(t, company)
}

func TestRepositories_AggregatesAreIndependent(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewMemoryStore())

	require.NoError(t, repos.CostCodeRepo.SaveCostCodes(ctx, []domain.CostCode{
		{CostCodeID: "cc-1", Code: "09 29 00", Title: "Gypsum Board"},
	}))
	require.NoError(t, repos.ProjectRepo.SaveProjects(ctx, []domain.Project{
		{ProjectID: "p1", Name: "Main St Office"},
	}))

	costCodes, err := repos.CostCodeRepo.FindCostCodes(ctx)
	require.NoError(t, err)
	assert.Len(t, costCodes, 1)

	projects, err := repos.ProjectRepo.FindProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	// Writing one aggregate never disturbs another key.
	invoices, err := repos.InvoiceRepo.FindInvoices(ctx)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestCompanyRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewMemoryStore())

	require.NoError(t, repos.CompanyRepo.SaveCompany(ctx, domain.Company{
		CompanyID: "co-1",
		Name:      "Acme Builders",
	}))

	company, err := repos.CompanyRepo.FindCompany(ctx)
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "co-1", company.CompanyID)
}
