package app

import (
	"github.com/jask/karta/core"
	"github.com/jask/karta/core/widgets"
)

type subscriptionPanel struct{}

func NewSubscriptionPanel() core.Panel { return subscriptionPanel{} }

func (subscriptionPanel) ID() core.View { return core.ViewSubscription }
func (subscriptionPanel) Title() string { return "Подписка" }

func (subscriptionPanel) Build(rc core.RenderContext) widgets.Widget {
	plans := rc.Catalog.Plans()
	cards := make([]widgets.Widget, 0, len(plans))
	for _, plan := range plans {
		price := priceStyle.Render(rc.Price(plan.Price)) + mutedStyle.Render(" / "+plan.Period)
		action := mutedStyle.Render("Оформить")
		badge := ""
		if plan.VIP {
			badge = vipStyle.Render("★ VIP")
			action = vipStyle.Render("[ Оформить ]")
		}
		cards = append(cards, widgets.Pane{
			Title:     plan.Name,
			Badge:     badge,
			Height:    4,
			Highlight: plan.VIP,
			Content:   price + "\n" + action,
		})
	}
	return headed("Подписка", cards, 4)
}
