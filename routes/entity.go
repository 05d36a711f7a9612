package routes

import (
	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/utils"

	"github.com/kataras/iris/v12"
)

// ResolveEntity turns a bare (type, id) reference into the full entity owned
// by the matching provider. This is the endpoint peers use for cross-service
// linking when all they hold is a reference.
func ResolveEntity(ctx iris.Context) {
	entityType, err := core.ParseEntityType(ctx.Params().Get("type"))
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": err.Error()})
		return
	}

	entityID := ctx.Params().GetUintDefault("id", 0)
	if entityID == 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid entity ID"})
		return
	}

	entity, err := Resolver.Resolve(ctx.Request().Context(), core.Ref{ID: entityID, Type: entityType})
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	ctx.JSON(iris.Map{
		"type":   entityType,
		"entity": entity,
	})
}
