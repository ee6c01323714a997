package cart

import "github.com/prometheus/client_golang/prometheus"

var (
	CampaignOutcomeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_campaign_outcome_total",
			Help: "Campaign application outcomes grouped by discount kind",
		},
		[]string{"kind", "result"},
	)
	CouponOutcomeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_coupon_outcome_total",
			Help: "Coupon application outcomes grouped by discount kind",
		},
		[]string{"kind", "result"},
	)
)

func init() {
	prometheus.MustRegister(CampaignOutcomeTotal, CouponOutcomeTotal)
}
