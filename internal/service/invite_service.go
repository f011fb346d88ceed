package service

import (
	"errors"

	"Hive_Community/internal/config"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type InviteService struct {
	smtp       pkg.SMTPConfig
	repo       *mysql.CommunityRepository
	memberRepo *mysql.CommunityMemberRepository
	userRepo   *mysql.UserRepository
}

func NewInviteService(cfg *config.Config) *InviteService {
	return &InviteService{
		smtp: pkg.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		},
		repo:       &mysql.CommunityRepository{DB: mysql.DB},
		memberRepo: &mysql.CommunityMemberRepository{DB: mysql.DB},
		userRepo:   &mysql.UserRepository{DB: mysql.DB},
	}
}

// Invite 成员向任意邮箱发送社区邀请邮件，非成员拒绝
func (s *InviteService) Invite(userID uint64, communityName, email string) error {
	community, err := s.repo.FindByName(communityName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommunityNotFound
		}
		return err
	}

	isMember, err := s.memberRepo.IsMember(community.ID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrNotMember
	}

	inviter, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	html := pkg.InviteHTML(inviter.Username, community.Title, community.Name)
	subject := "社区邀请：" + community.Title
	return pkg.SendEmail(s.smtp, email, subject, html)
}
