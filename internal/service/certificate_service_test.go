package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/mocks"
	"github.com/alexanderramin/skilltrade/internal/repository"
	"github.com/alexanderramin/skilltrade/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCertificateService_Issue_Snapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.directory.AddOrganization(ctx, testutil.NewTestOrganization("org-acme", "Acme Labs")))
	p, cand := env.startedProject(t, "Analytics",
		testutil.WithOrganization("org-acme"),
		testutil.WithSkills("SQL", "dbt"),
		testutil.WithDuration("6 weeks"),
	)

	cert, err := env.certificates.Issue(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cert.ID, "cert-"))
	assert.Equal(t, cand.ID, cert.CandidateID)
	assert.Equal(t, "Analytics", cert.ProjectTitle)
	assert.Equal(t, "Acme Labs", cert.OrganizationName)
	require.NotNil(t, cert.HoursWorked)
	assert.Equal(t, 90, *cert.HoursWorked)

	// Later project edits must not reach the issued certificate.
	title := "Renamed"
	skills := []string{"Spark"}
	_, err = env.projects.Update(ctx, p.ID, domain.ProjectPatch{Title: &title, Skills: &skills})
	require.NoError(t, err)

	stored, err := env.certificates.GetByID(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "Analytics", stored.ProjectTitle)
	assert.Equal(t, []string{"SQL", "dbt"}, stored.Skills)

	mine, err := env.certificates.ListByCandidate(ctx, cand.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCertificateService_Issue_UnknownOrganization(t *testing.T) {
	env := newTestEnv(t)

	p, _ := env.startedProject(t, "Orphan", testutil.WithOrganization("org-gone"), testutil.WithDuration("flexible"))

	cert, err := env.certificates.Issue(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, cert.OrganizationName)
	assert.Nil(t, cert.HoursWorked, "duration without a leading number has no hours")
}

func TestCertificateService_Issue_UnknownProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.certificates.Issue(ctx, "proj-missing")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	all, err := env.certificates.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCertificateService_Issue_DirectoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationDirectory(ctrl)
	projects := repository.NewMemoryProjectRepo()
	certs := repository.NewMemoryCertificateRepo()
	ctx := context.Background()

	p := testutil.NewTestProject("Any", testutil.WithOrganization("org-1"))
	require.NoError(t, projects.Create(ctx, p))

	orgs.EXPECT().GetOrganization(gomock.Any(), "org-1").Return(nil, errors.New("timeout"))

	svc := NewCertificateService(projects, orgs, certs)
	_, err := svc.Issue(ctx, p.ID)
	require.Error(t, err)

	all, err := certs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
