package business

// EmailData represents data for email templates
type EmailData struct {
	RecipientName    string
	RecipientEmail   string
	EventTitle       string
	EventStartsAt    string
	Amount           string
	Currency         string
	RefundPercentage string
	Reason           string
	TicketCode       string
	SupportEmail     string
}
