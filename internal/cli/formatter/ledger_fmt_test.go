package formatter

import (
	"testing"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatCertificateList(t *testing.T) {
	hours := 60
	certs := []*domain.Certificate{{
		ID:               "cert-1",
		CandidateID:      "stu-2",
		ProjectTitle:     "Sustainability Report Analysis",
		OrganizationName: "GreenLeaf Analytics",
		Skills:           []string{"Python"},
		CompletedAt:      testutil.FixedNow,
		HoursWorked:      &hours,
	}}

	out := stripANSI(FormatCertificateList(certs))

	assert.Contains(t, out, "cert-1")
	assert.Contains(t, out, "GreenLeaf Analytics")
	assert.Contains(t, out, "60h")
	assert.Contains(t, out, "Mar 15, 2025")
}

func TestFormatEscrowList_Totals(t *testing.T) {
	released := testutil.FixedNow
	txs := []*domain.EscrowTransaction{
		{ID: "esc-1", ProjectID: "proj-4", Amount: 600, Status: domain.EscrowLocked, LockedAt: testutil.FixedNow},
		{ID: "esc-2", ProjectID: "proj-5", Amount: 1500, Status: domain.EscrowReleased, LockedAt: testutil.FixedNow, ReleasedAt: &released},
	}

	out := stripANSI(FormatEscrowList(txs))

	assert.Contains(t, out, "locked $600")
	assert.Contains(t, out, "released $1,500")
	assert.Contains(t, out, "Locked")
}

func TestFormatEscrowList_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatEscrowList(nil)), "No escrow transactions.")
}
