package main

import (
	"alxtravel/src/common"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	common.ErrInvalidDateRange,
	common.ErrDuplicateBooking,
	common.ErrInvalidRating,
	common.ErrDuplicateReview,
	common.ErrInvalidStatusTransition,
	common.ErrNotHost,
	common.ErrInvalidListing,
	common.ErrDuplicateUser,
	common.ErrInvalidUser,
	common.ErrTotalTooLarge,
}

// errorResponse picks the status for a domain error and the message shown to
// clients. Sentinels are reported with their own text.
func errorResponse(err error) (int, string) {
	if errors.Is(err, common.ErrNotFound) {
		return http.StatusNotFound, err.Error()
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			if target == common.ErrInvalidDateRange {
				return http.StatusBadRequest, target.Error()
			}
			return http.StatusBadRequest, err.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func abortWithError(ctx *gin.Context, err error) {
	status, msg := errorResponse(err)
	if status == http.StatusInternalServerError {
		log.Printf("Error on %s %s: %s\n", ctx.Request.Method, ctx.FullPath(), err.Error())
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func bindError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
