package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// WalletGateway implements Gateway for crypto wallet payments. The wallet
// transfer happens entirely client-side, so Initiate only mints a local
// reference and Confirm accepts the reported transaction hash without
// on-chain verification. All trust in the hash is isolated here so a
// chain-verifying implementation can replace it without touching callers.
type WalletGateway struct{}

// NewWalletGateway creates a new wallet gateway
func NewWalletGateway() *WalletGateway {
	return &WalletGateway{}
}

// Initiate mints a local payment reference for a wallet transfer
func (g *WalletGateway) Initiate(ctx context.Context, req *InitiateRequest) (*Intent, error) {
	if req == nil {
		return nil, fmt.Errorf("initiate request is required")
	}

	return &Intent{
		Reference: "wallet_" + uuid.New().String(),
		Status:    "awaiting_transfer",
	}, nil
}

// Confirm accepts a reported transaction hash. A missing hash is the only
// rejection.
func (g *WalletGateway) Confirm(ctx context.Context, req *ConfirmRequest) (*Confirmation, error) {
	if req == nil {
		return nil, fmt.Errorf("confirm request is required")
	}

	if req.TransactionHash == "" {
		return &Confirmation{Verified: false, Status: "missing_transaction_hash"}, nil
	}

	return &Confirmation{Verified: true, Status: "succeeded"}, nil
}

// Name returns the gateway name
func (g *WalletGateway) Name() string {
	return "wallet"
}
