package routes

import (
	"github.com/parkerholladay/odyssey-voyage-II-server/utils"

	"github.com/kataras/iris/v12"
)

type AddFundsInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func GetWallet(ctx iris.Context) {
	amount, err := Core.WalletAmount(ctx.Request().Context(), utils.IdentityFromContext(ctx))
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"amount": amount})
}

func AddFundsToWallet(ctx iris.Context) {
	var input AddFundsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	result, err := Core.AddFundsToWallet(ctx.Request().Context(), utils.IdentityFromContext(ctx), input.Amount)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	ctx.JSON(result)
}
