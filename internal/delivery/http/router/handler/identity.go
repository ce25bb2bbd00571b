package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user id placed on the context by the
// auth middleware. Handlers behind the middleware treat a missing id as a
// broken token, not a programming error.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// visitorUserID reads the visitor's id on pages that serve both anonymous and
// authenticated visitors. Anonymous visitors come back as uuid.Nil.
func visitorUserID(c echo.Context) uuid.UUID {
	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		return userID
	}

	return uuid.Nil
}
