package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskhive/config"
	"taskhive/models"
	"taskhive/repository"
)

// currentUserID returns the identity the auth middleware resolved for
// this request. Handlers must not touch persistence when it is absent.
func currentUserID(c *gin.Context) (string, bool) {
	uid := c.GetString("uid")
	return uid, uid != ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("unauthorized"))
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, models.Fail("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// writeRepoError maps repository errors onto the response envelope.
// Unexpected store failures are logged and collapsed to a generic 500.
func writeRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrValidation), errors.Is(err, repository.ErrParentNotFound):
		c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, models.Fail("not found"))
	default:
		config.Logger.Errorw("persistence failure",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, models.Fail("Internal Server Error"))
	}
}
