package model

import "time"

// 社区类型枚举
const (
	CommunityTypePublic  = "P"
	CommunityTypePrivate = "T"
)

type Community struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex;size:32;not null" json:"name"`
	Title          string    `gorm:"size:100;not null" json:"title"`
	Type           string    `gorm:"size:1;not null" json:"type"` // P=public T=private
	Color          string    `gorm:"size:7;not null" json:"color"`
	Description    string    `gorm:"size:500" json:"description,omitempty"`
	Rules          string    `gorm:"size:1500" json:"rules,omitempty"`
	UserAdjective  string    `gorm:"size:32" json:"user_adjective,omitempty"`
	UsersAdjective string    `gorm:"size:32" json:"users_adjective,omitempty"`
	Avatar         string    `gorm:"size:255" json:"avatar,omitempty"`
	Cover          string    `gorm:"size:255" json:"cover,omitempty"`
	CreatorID      uint64    `gorm:"not null;index" json:"creator_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`
}

type Category struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:32;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CommunityCategory 社区-分类关联表
type CommunityCategory struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_category"`
	CategoryID  uint64 `gorm:"not null;index;uniqueIndex:uk_community_category"`
	CreatedAt   time.Time
}

type CommunityMember struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	Role        int    `gorm:"not null;default:0"` // 0=member, 1=admin
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CommunityFavorite 收藏表。约束：必须先是成员才能收藏，退出社区时一并删除
type CommunityFavorite struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_favorite_community_user"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_favorite_community_user"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
