package services

import (
	"sync"
	"time"
	"toron/internal/db"
	"toron/internal/models"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// Claim sort modes. Anything else falls back to the raw votes counter.
const (
	SortNew   = "new"
	SortBest  = "best"
	SortTrend = "trend"
)

// TrendWindow is how far back the topic "trend" mode looks; older
// topics are excluded from the result entirely, not ranked lower.
const TrendWindow = 7 * 24 * time.Hour

// TopicFilter narrows the topic list before ranking. Empty fields are
// ignored; set fields combine as AND.
type TopicFilter struct {
	Category  string
	Region    string
	District  string
	TopicType string
}

// RankingService orders claims and topics by derived aggregates. All
// ordering happens in SQL over the persisted counters and timestamps;
// there is no precomputed score to maintain. The clock is injected so
// the trend window can be tested.
type RankingService struct {
	clock clockwork.Clock
}

var (
	rankingService *RankingService
	rankingOnce    sync.Once
)

// GetRankingService 获取单例排名服务
func GetRankingService() *RankingService {
	rankingOnce.Do(func() {
		rankingService = NewRankingService(clockwork.NewRealClock())
	})
	return rankingService
}

func NewRankingService(clock clockwork.Clock) *RankingService {
	return &RankingService{clock: clock}
}

// ClaimsByTopic returns a topic's claims under the given sort mode.
// Ties keep a deterministic order via ascending id.
//
//	new:     claim creation time, newest first
//	best:    rebuttal count, any depth, vote state irrelevant
//	trend:   latest discussion activity (last rebuttal, or the claim
//	         itself when it has none)
//	default: denormalized votes counter
func (s *RankingService) ClaimsByTopic(topicID uint, sortBy string) ([]models.Claim, error) {
	q := db.DB.Model(&models.Claim{}).Preload("User").
		Where("claims.topic_id = ?", topicID)

	switch sortBy {
	case SortNew:
		q = q.Order("claims.created_at DESC, claims.id ASC")
	case SortBest:
		q = joinRebuttals(q).Order("COUNT(rebuttals.id) DESC, claims.id ASC")
	case SortTrend:
		// GREATEST(max rebuttal time, claim time), spelled as CASE so
		// the same SQL runs on Postgres and SQLite.
		q = joinRebuttals(q).Order(
			"CASE WHEN MAX(rebuttals.created_at) IS NULL OR MAX(rebuttals.created_at) < claims.created_at " +
				"THEN claims.created_at ELSE MAX(rebuttals.created_at) END DESC, claims.id ASC")
	default:
		q = q.Order("claims.votes DESC, claims.id ASC")
	}

	var claims []models.Claim
	if err := q.Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func joinRebuttals(q *gorm.DB) *gorm.DB {
	return q.Select("claims.*").
		Joins("LEFT JOIN rebuttals ON rebuttals.claim_id = claims.id").
		Group("claims.id")
}

// Topics returns the filtered topic list under the given sort mode.
//
//	best:    sum of claim votes (empty topics sum to 0)
//	trend:   same ordering, restricted to topics created in the last
//	         seven days
//	new / default: topic creation time, newest first
func (s *RankingService) Topics(filter TopicFilter, sortBy string) ([]models.Topic, error) {
	q := db.DB.Model(&models.Topic{})

	if filter.Category != "" {
		q = q.Where("topics.category = ?", filter.Category)
	}
	if filter.Region != "" {
		q = q.Where("topics.region = ?", filter.Region)
	}
	if filter.District != "" {
		q = q.Where("topics.district = ?", filter.District)
	}
	if filter.TopicType != "" {
		q = q.Where("topics.topic_type = ?", filter.TopicType)
	}

	switch sortBy {
	case SortBest:
		q = orderByVoteSum(q)
	case SortTrend:
		cutoff := s.clock.Now().Add(-TrendWindow)
		q = orderByVoteSum(q.Where("topics.created_at >= ?", cutoff))
	default:
		q = q.Order("topics.created_at DESC, topics.id ASC")
	}

	var topics []models.Topic
	if err := q.Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func orderByVoteSum(q *gorm.DB) *gorm.DB {
	return q.Select("topics.*").
		Joins("LEFT JOIN claims ON claims.topic_id = topics.id").
		Group("topics.id").
		Order("COALESCE(SUM(claims.votes), 0) DESC, topics.id ASC")
}
