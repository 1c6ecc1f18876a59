package engine

import (
	"context"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/quality"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Presenter renders the side effects of a generated item (sounds, visuals,
// announcements). tier is nil for untiered items. Implementations must not
// modify the item.
type Presenter interface {
	Present(ctx context.Context, sc *situation.Context, item domain.RewardItem, tier *quality.Tier) error
}

// NopPresenter discards every item
type NopPresenter struct{}

// Present implements Presenter
func (NopPresenter) Present(context.Context, *situation.Context, domain.RewardItem, *quality.Tier) error {
	return nil
}
