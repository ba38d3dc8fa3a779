package main

import (
	"alxtravel/src/common"
	"alxtravel/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func reviewHandlers(g *gin.RouterGroup, svc *common.Service) *gin.RouterGroup {
	g.
		GET("/reviews", func(ctx *gin.Context) {
			var filters types.ReviewQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				bindError(ctx, err)
				return
			}
			reviews, err := svc.ListReviews(ctx, filters)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			data := common.SerializeReviews(reviews)
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/reviews/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			review, err := svc.GetReview(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": common.SerializeReview(review)})
		}).
		POST("/reviews", func(ctx *gin.Context) {
			var body types.CreateReviewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				bindError(ctx, err)
				return
			}
			review, err := svc.RegisterReview(ctx, body.ListingID, body.GuestID, body.Rating, body.Comment)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": common.SerializeReview(review)})
		}).
		PATCH("/reviews/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			var body types.UpdateReviewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				bindError(ctx, err)
				return
			}
			review, err := svc.UpdateReview(ctx, params.ID, body.Rating, body.Comment)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": common.SerializeReview(review)})
		}).
		DELETE("/reviews/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			if err := svc.DeleteReview(ctx, params.ID); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
