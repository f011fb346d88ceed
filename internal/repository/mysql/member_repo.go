package mysql

import (
	"Hive_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityMemberRepository struct {
	DB *gorm.DB
}

// Join 幂等加入：已存在 (community_id, user_id) 时不报错也不重复写事件
func (r *CommunityMemberRepository) Join(member *model.CommunityMember) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(member)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return insertOutbox(tx, model.EventMemberJoined, member.CommunityID, member.UserID)
	})
}

// Leave 退出社区，收藏行一并删除
func (r *CommunityMemberRepository) Leave(communityID, userID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("community_id = ? AND user_id = ?", communityID, userID).
			Delete(&model.CommunityFavorite{}).Error; err != nil {
			return err
		}
		res := tx.Where("community_id = ? AND user_id = ?", communityID, userID).
			Delete(&model.CommunityMember{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return insertOutbox(tx, model.EventMemberLeft, communityID, userID)
	})
}

func (r *CommunityMemberRepository) IsMember(communityID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}

type CommunityFavoriteRepository struct {
	DB *gorm.DB
}

// Favorite 幂等收藏。成员资格由 service 层先行校验
func (r *CommunityFavoriteRepository) Favorite(fav *model.CommunityFavorite) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(fav)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return insertOutbox(tx, model.EventCommunityFavorited, fav.CommunityID, fav.UserID)
	})
}

// Unfavorite 幂等取消收藏
func (r *CommunityFavoriteRepository) Unfavorite(communityID, userID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("community_id = ? AND user_id = ?", communityID, userID).
			Delete(&model.CommunityFavorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return insertOutbox(tx, model.EventFavoriteRemoved, communityID, userID)
	})
}

func (r *CommunityFavoriteRepository) IsFavorite(communityID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CommunityFavorite{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}
