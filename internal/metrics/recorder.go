package metrics

import (
	"context"
	"time"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
)

// RecordGeneration updates the reward metrics for one completed generation.
func RecordGeneration(ctx context.Context, items []domain.RewardItem, elapsed time.Duration) {
	GenerationDuration.Observe(elapsed.Seconds())

	outcome := OutcomeRewarded
	if len(items) == 0 {
		outcome = OutcomeEmpty
	}
	GenerationsTotal.WithLabelValues(outcome).Inc()

	for _, item := range items {
		tier := string(item.Tier)
		if tier == "" {
			tier = "none"
		}
		ItemsGenerated.WithLabelValues(tier).Inc()
		for _, aug := range item.Augmentations {
			AugmentationsTotal.WithLabelValues(aug.Name).Inc()
		}
		if item.Broadcast {
			BroadcastItemsTotal.Inc()
		}
	}

	logger.FromContext(ctx).Debug(LogMsgGenerationRecorded,
		"items", len(items),
		"outcome", outcome,
		"elapsed", elapsed)
}

// RecordTable counts one invocation of a reward table.
func RecordTable(tableID string) {
	TableInvocations.WithLabelValues(tableID).Inc()
}
