package formatter

import (
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// FormatCertificateList renders issued certificates.
func FormatCertificateList(certs []*domain.Certificate) string {
	if len(certs) == 0 {
		return RenderBox("Certificates", Dim("No certificates issued."))
	}

	headers := []string{"ID", "CANDIDATE", "PROJECT", "ORGANIZATION", "SKILLS", "HOURS", "COMPLETED"}
	rows := make([][]string, 0, len(certs))
	for _, c := range certs {
		hours := Placeholder()
		if c.HoursWorked != nil {
			hours = fmt.Sprintf("%dh", *c.HoursWorked)
		}
		rows = append(rows, []string{
			Dim(c.ID),
			c.CandidateID,
			Bold(c.ProjectTitle),
			domain.CoalesceStr(c.OrganizationName, "--"),
			JoinList(c.Skills),
			hours,
			HumanDate(&c.CompletedAt),
		})
	}
	return RenderBox("Certificates", RenderTable(headers, rows))
}

// FormatEscrowList renders escrow transactions with a locked/released
// total line.
func FormatEscrowList(txs []*domain.EscrowTransaction) string {
	if len(txs) == 0 {
		return RenderBox("Escrow", Dim("No escrow transactions."))
	}

	var locked, released float64
	headers := []string{"ID", "PROJECT", "AMOUNT", "STATUS", "LOCKED", "RELEASED"}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		switch tx.Status {
		case domain.EscrowLocked:
			locked += tx.Amount
		case domain.EscrowReleased:
			released += tx.Amount
		}
		rows = append(rows, []string{
			Dim(tx.ID),
			tx.ProjectID,
			Money(tx.Amount),
			EscrowStatusPill(tx.Status),
			HumanDate(&tx.LockedAt),
			HumanDate(tx.ReleasedAt),
		})
	}

	totals := fmt.Sprintf("%s %s   %s %s",
		Dim("locked"), StyleYellow.Render(Money(locked)),
		Dim("released"), StyleGreen.Render(Money(released)))
	return RenderBox("Escrow", RenderTable(headers, rows)+"\n"+totals)
}
