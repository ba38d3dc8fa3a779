package main

import (
	"alxtravel/src/common"
	"alxtravel/src/models"
	"alxtravel/src/types"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup, svc *common.Service) *gin.RouterGroup {
	transition := func(fn func(context.Context, uint) (*models.Booking, error)) gin.HandlerFunc {
		return func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			if _, err := fn(ctx, params.ID); err != nil {
				abortWithError(ctx, err)
				return
			}
			data, err := svc.BookingDetail(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}
	}

	g.
		GET("/bookings", func(ctx *gin.Context) {
			var filters types.BookingQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				bindError(ctx, err)
				return
			}
			data, err := svc.BookingDetails(ctx, filters)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			data, err := svc.BookingDetail(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				bindError(ctx, err)
				return
			}
			// both dates already passed the isodate validator
			checkIn, _ := types.ParseDate(body.CheckInDate)
			checkOut, _ := types.ParseDate(body.CheckOutDate)
			booking, err := svc.CreateBooking(ctx, body.ListingID, body.GuestID, checkIn, checkOut)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			data, err := svc.BookingDetail(ctx, booking.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": data})
		}).
		PUT("/bookings/:id/confirm", transition(svc.ConfirmBooking)).
		PUT("/bookings/:id/cancel", transition(svc.CancelBooking)).
		DELETE("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				bindError(ctx, err)
				return
			}
			if err := svc.DeleteBooking(ctx, params.ID); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
