// utils/subscription.go
package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type gatedBrand struct {
	SelectedPlanID      string
	SubscriptionEndTime *time.Time
}

// SubscriptionGate blocks session-sensitive routes with 402 unless the
// caller's brand holds a plan whose end time is strictly in the future.
// An end time equal to "now" counts as expired. Expiry is evaluated here,
// lazily, on every gated request; nothing sweeps subscriptions in the
// background.
func SubscriptionGate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		brandID, _ := c.Get("brandId")

		var brand gatedBrand
		if err := db.Table("brands").
			Select("selected_plan_id", "subscription_end_time").
			Where("brand_id = ?", brandID).
			Take(&brand).Error; err != nil {
			RespondWithError(c, http.StatusPaymentRequired, "Subscription is required")
			c.Abort()
			return
		}

		if brand.SelectedPlanID == "" {
			RespondWithError(c, http.StatusPaymentRequired, "Subscription is required")
			c.Abort()
			return
		}

		if brand.SubscriptionEndTime == nil || !brand.SubscriptionEndTime.After(time.Now()) {
			RespondWithError(c, http.StatusPaymentRequired, "Your subscription has expired")
			c.Abort()
			return
		}

		c.Next()
	}
}
