package payment

import "context"

// Method identifies which gateway handles a payment
type Method string

const (
	MethodCard   Method = "card"
	MethodCrypto Method = "crypto"
)

// InitiateRequest carries what a gateway needs to start a payment
type InitiateRequest struct {
	BookingID int64
	UserID    int64
	Amount    int64 // minor currency units (cents)
	Currency  string
	Metadata  map[string]string
}

// Intent is the provider-side handle for a started payment
type Intent struct {
	// Reference is the provider's id for the payment, stored on the
	// booking for later reconciliation
	Reference string
	// ClientSecret is handed to the client to complete the payment.
	// Empty for gateways without a client-side completion step.
	ClientSecret string
	Status       string
}

// ConfirmRequest carries the proof of payment the client or provider
// reports back
type ConfirmRequest struct {
	// Reference is the provider payment id being confirmed
	Reference string
	// TransactionHash is the on-chain receipt for crypto payments
	TransactionHash string
}

// Confirmation is the gateway's verdict on a reported payment
type Confirmation struct {
	// Verified is true when the gateway confirmed the funds moved
	Verified bool
	Status   string
}

// Gateway abstracts a payment provider. Implementations must be safe for
// concurrent use.
type Gateway interface {
	// Initiate starts a payment for the given amount and returns the
	// provider reference
	Initiate(ctx context.Context, req *InitiateRequest) (*Intent, error)

	// Confirm checks whether a previously initiated payment went through
	Confirm(ctx context.Context, req *ConfirmRequest) (*Confirmation, error)

	// Name returns the gateway name for logging and event payloads
	Name() string
}
