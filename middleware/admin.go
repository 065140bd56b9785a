package middleware

import (
	"net/http"

	guestRepo "innbook/database/repository/guest"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminOnlyMiddleware allows only staff accounts through. Must run
// after JWTAuthGuestMiddleware, which sets guestID.
func AdminOnlyMiddleware(repo guestRepo.GuestRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.GetString("guestID")
		if guestID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		proj := bson.M{"id": 1, "is_admin": 1}
		guest, err := repo.GetByIDWithProjection(guestID, proj)
		if err != nil || guest == nil || !guest.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
				"code":  0,
			})
			return
		}
		c.Next()
	}
}
