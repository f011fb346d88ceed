package mysql

import (
	"encoding/json"
	"errors"
	"time"

	"Hive_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create 建社区：同一事务内写社区行、分类关联、创建者成员（角色=1）和 outbox 事件
func (r *CommunityRepository) Create(c *model.Community, categoryIDs []uint64) (*model.Community, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}

		for _, catID := range categoryIDs {
			link := &model.CommunityCategory{CommunityID: c.ID, CategoryID: catID}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}

		// 创建者幂等加入为管理员
		member := &model.CommunityMember{
			CommunityID: c.ID,
			UserID:      c.CreatorID,
			Role:        1,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(member).Error; err != nil {
			return err
		}

		return insertOutbox(tx, model.EventCommunityCreated, c.ID, c.CreatorID)
	})
	return c, err
}

func (r *CommunityRepository) FindByName(name string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("name = ?", name).First(&community).Error
	return &community, err
}

// NameTaken 名字是否已被占用
func (r *CommunityRepository) NameTaken(name string) (bool, error) {
	_, err := r.FindByName(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// ListJoined 用户已加入的全部社区
func (r *CommunityRepository) ListJoined(userID uint64) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", userID).
		Find(&list).Error
	return list, err
}

// ListFavorites 已加入且收藏的社区子集
func (r *CommunityRepository) ListFavorites(userID uint64) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.
		Joins("JOIN community_favorites ON community_favorites.community_id = communities.id").
		Where("community_favorites.user_id = ?", userID).
		Find(&list).Error
	return list, err
}

// insertOutbox 事务内追加社区事件，由 relay 异步投递
func insertOutbox(tx *gorm.DB, event string, communityID, actorID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time":   time.Now().UTC().Format(time.RFC3339Nano),
		"community_id": communityID,
		"actor_id":     actorID,
	})
	ob := &model.CommunityOutbox{
		EventType:   event,
		CommunityID: communityID,
		ActorID:     actorID,
		Payload:     string(payload),
		Status:      0,
	}
	return tx.Create(ob).Error
}
