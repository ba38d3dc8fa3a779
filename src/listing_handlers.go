package main

import (
	"alxtravel/src/common"
	"alxtravel/src/models"
	"alxtravel/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func listingHandlers(g *gin.RouterGroup, svc *common.Service) *gin.RouterGroup {
	g.
		GET("/listings", func(ctx *gin.Context) {
			var filters types.ListingQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				bindError(ctx, err)
				return
			}
			data, err := svc.ListingDetails(ctx, filters)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/listings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			data, err := svc.ListingDetail(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		POST("/listings", func(ctx *gin.Context) {
			var body types.CreateListingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				bindError(ctx, err)
				return
			}
			listing := models.Listing{
				Title:         body.Title,
				Description:   body.Description,
				PricePerNight: *body.PricePerNight,
				NumberOfRooms: body.NumberOfRooms,
				MaxGuests:     body.MaxGuests,
				City:          body.City,
				Country:       body.Country,
				HostID:        body.HostID,
			}
			if err := svc.CreateListing(ctx, &listing); err != nil {
				abortWithError(ctx, err)
				return
			}
			data, err := svc.ListingDetail(ctx, listing.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": data})
		}).
		PATCH("/listings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			var body types.UpdateListingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				bindError(ctx, err)
				return
			}
			if _, err := svc.UpdateListing(ctx, params.ID, body); err != nil {
				abortWithError(ctx, err)
				return
			}
			data, err := svc.ListingDetail(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		DELETE("/listings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			if err := svc.DeleteListing(ctx, params.ID); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
