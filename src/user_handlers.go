package main

import (
	"alxtravel/src/common"
	"alxtravel/src/models"
	"alxtravel/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup, svc *common.Service) *gin.RouterGroup {
	g.
		GET("/users", func(ctx *gin.Context) {
			var filters types.UserQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				bindError(ctx, err)
				return
			}
			users, err := svc.ListUsers(ctx, filters)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			data := make([]*types.APIResponseUser, 0, len(users))
			for i := range users {
				data = append(data, common.SerializeUser(&users[i]))
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		POST("/users", func(ctx *gin.Context) {
			var body types.CreateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				bindError(ctx, err)
				return
			}
			user := models.User{
				Username:  body.Username,
				Email:     body.Email,
				FirstName: body.FirstName,
				LastName:  body.LastName,
				Role:      body.Role,
			}
			if err := svc.CreateUser(ctx, &user); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": common.SerializeUser(&user)})
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			user, err := svc.GetUser(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": common.SerializeUser(user)})
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			if err := svc.DeleteUser(ctx, params.ID); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
