package core

import "context"

// WalletAmount reads the actor's live balance; funds are never cached.
func (c *Core) WalletAmount(ctx context.Context, id Identity) (float64, error) {
	if err := requireIdentity(id); err != nil {
		return 0, err
	}
	return c.Payments.GetUserWalletAmount(ctx, id.UserID)
}

func (c *Core) AddFundsToWallet(ctx context.Context, id Identity, amount float64) (FundsResult, error) {
	if err := requireIdentity(id); err != nil {
		return FundsResult{}, err
	}

	updated, err := c.Payments.AddFunds(ctx, id.UserID, amount)
	if err != nil {
		return FundsResult{Response: failed(err.Error())}, nil
	}

	return FundsResult{
		Response: ok("Successfully added funds to wallet"),
		Amount:   updated,
	}, nil
}
