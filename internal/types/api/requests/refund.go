package requests

// RefundBookingRequest represents the request to refund a booking
type RefundBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// WithdrawParticipantRequest represents the request to withdraw a participant
type WithdrawParticipantRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
