package db

import "github.com/jackc/pgx/v5"

// Row scanners shared by the generated queries. Kept outside the generated
// files so regeneration does not drop them.

func scanBooking(row pgx.Row, i *Booking) error {
	return row.Scan(
		&i.ID,
		&i.EventID,
		&i.UserID,
		&i.Email,
		&i.Status,
		&i.TotalPaidCents,
		&i.Currency,
		&i.StripePaymentIntentID,
		&i.RefundAmountCents,
		&i.RefundReason,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func scanParticipant(row pgx.Row, i *Participant) error {
	return row.Scan(
		&i.ID,
		&i.BookingID,
		&i.SectionID,
		&i.Name,
		&i.Email,
		&i.Status,
		&i.PriceCents,
		&i.TicketCode,
		&i.RefundAmountCents,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func scanRefund(row pgx.Row, i *Refund) error {
	return row.Scan(
		&i.ID,
		&i.BookingID,
		&i.ParticipantID,
		&i.Source,
		&i.AmountCents,
		&i.Percentage,
		&i.Status,
		&i.ProviderRefundID,
		&i.Reason,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func collectParticipants(rows pgx.Rows) ([]Participant, error) {
	defer rows.Close()
	items := []Participant{}
	for rows.Next() {
		var i Participant
		if err := scanParticipant(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetDBTX returns the underlying connection or transaction.
func (q *Queries) GetDBTX() DBTX {
	return q.db
}
