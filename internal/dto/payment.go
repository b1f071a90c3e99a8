package dto

// CreatePaymentIntentRequest starts a card payment for a booking
type CreatePaymentIntentRequest struct {
	BookingID int64 `json:"bookingId" binding:"required"`
}

// CreatePaymentIntentResponse returns what the client needs to complete
// the card payment
type CreatePaymentIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
}

// ConfirmPaymentRequest reports client-side completion of a card payment
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

// ConfirmCryptoPaymentRequest reports a completed wallet transfer
type ConfirmCryptoPaymentRequest struct {
	BookingID       int64  `json:"bookingId" binding:"required"`
	TransactionHash string `json:"transactionHash" binding:"required"`
	WalletAddress   string `json:"walletAddress" binding:"required"`
}

// ConfirmPaymentResponse is the verdict on a reported payment
type ConfirmPaymentResponse struct {
	Success bool             `json:"success"`
	Status  string           `json:"status"`
	Booking *BookingResponse `json:"booking,omitempty"`
}
