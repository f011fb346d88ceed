package service

import (
	"errors"
	"fmt"

	"Hive_Community/internal/config"
	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrCommunityNotFound = errors.New("community not found")
	ErrNotMember         = errors.New("not a member of this community")
)

type CommunityService struct {
	cfg        *config.Config
	repo       *mysql.CommunityRepository
	catRepo    *mysql.CategoryRepository
	memberRepo *mysql.CommunityMemberRepository
	favRepo    *mysql.CommunityFavoriteRepository
}

func NewCommunityService(cfg *config.Config) *CommunityService {
	return &CommunityService{
		cfg:        cfg,
		repo:       &mysql.CommunityRepository{DB: mysql.DB},
		catRepo:    &mysql.CategoryRepository{DB: mysql.DB},
		memberRepo: &mysql.CommunityMemberRepository{DB: mysql.DB},
		favRepo:    &mysql.CommunityFavoriteRepository{DB: mysql.DB},
	}
}

// ValidName 上传文件前先挡掉非法名字
func (s *CommunityService) ValidName(name string) bool {
	return name != "" && validateName(name, s.cfg.NameMax) == ""
}

// Create 校验通过后落库。fieldErrs 非空时对应 400，err 对应 500
func (s *CommunityService) Create(userID uint64, in *CreateCommunityInput) (*model.Community, pkg.FieldErrors, error) {
	errs := validateCreate(in, s.cfg)
	if errs.Any() {
		return nil, errs, nil
	}

	taken, err := s.repo.NameTaken(in.Name)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		errs.Add("name", "a community with that name already exists")
	}

	cats, err := s.catRepo.FindByNames(in.Categories)
	if err != nil {
		return nil, nil, err
	}
	if len(cats) != len(in.Categories) {
		known := make(map[string]bool, len(cats))
		for _, c := range cats {
			known[c.Name] = true
		}
		for _, name := range in.Categories {
			if !known[name] {
				errs.Add("categories", fmt.Sprintf("category %q does not exist", name))
			}
		}
	}

	if errs.Any() {
		return nil, errs, nil
	}

	community := &model.Community{
		Name:           in.Name,
		Title:          in.Title,
		Type:           in.Type,
		Color:          normalizeColor(in.Color),
		Description:    in.Description,
		Rules:          in.Rules,
		UserAdjective:  in.UserAdjective,
		UsersAdjective: in.UsersAdjective,
		Avatar:         in.Avatar,
		Cover:          in.Cover,
		CreatorID:      userID,
	}

	categoryIDs := make([]uint64, 0, len(cats))
	for _, c := range cats {
		categoryIDs = append(categoryIDs, c.ID)
	}

	if _, err := s.repo.Create(community, categoryIDs); err != nil {
		return nil, nil, err
	}
	return community, nil, nil
}

// CheckName 名字可用性检查，只读。fieldErrs 为空表示可用
func (s *CommunityService) CheckName(name string) (pkg.FieldErrors, error) {
	errs := pkg.FieldErrors{}
	if name == "" {
		errs.Add("name", "name is required")
		return errs, nil
	}
	if msg := validateName(name, s.cfg.NameMax); msg != "" {
		errs.Add("name", msg)
		return errs, nil
	}

	taken, err := s.repo.NameTaken(name)
	if err != nil {
		return nil, err
	}
	if taken {
		errs.Add("name", "a community with that name already exists")
	}
	return errs, nil
}

type CommunityDetail struct {
	model.Community
	IsMember   bool `json:"is_member"`
	IsFavorite bool `json:"is_favorite"`
}

// Detail 按名字取社区，附带当前用户的成员/收藏状态
func (s *CommunityService) Detail(userID uint64, communityName string) (*CommunityDetail, error) {
	community, err := s.findByName(communityName)
	if err != nil {
		return nil, err
	}
	isMember, err := s.memberRepo.IsMember(community.ID, userID)
	if err != nil {
		return nil, err
	}
	isFavorite, err := s.favRepo.IsFavorite(community.ID, userID)
	if err != nil {
		return nil, err
	}
	return &CommunityDetail{Community: *community, IsMember: isMember, IsFavorite: isFavorite}, nil
}

func (s *CommunityService) Joined(userID uint64) ([]model.Community, error) {
	return s.repo.ListJoined(userID)
}

func (s *CommunityService) Favorites(userID uint64) ([]model.Community, error) {
	return s.repo.ListFavorites(userID)
}

func (s *CommunityService) Join(userID uint64, communityName string) error {
	community, err := s.findByName(communityName)
	if err != nil {
		return err
	}
	return s.memberRepo.Join(&model.CommunityMember{
		CommunityID: community.ID,
		UserID:      userID,
		Role:        0,
	})
}

func (s *CommunityService) Leave(userID uint64, communityName string) error {
	community, err := s.findByName(communityName)
	if err != nil {
		return err
	}
	return s.memberRepo.Leave(community.ID, userID)
}

// Favorite 收藏前必须已加入
func (s *CommunityService) Favorite(userID uint64, communityName string) error {
	community, err := s.findByName(communityName)
	if err != nil {
		return err
	}
	isMember, err := s.memberRepo.IsMember(community.ID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrNotMember
	}
	return s.favRepo.Favorite(&model.CommunityFavorite{
		CommunityID: community.ID,
		UserID:      userID,
	})
}

func (s *CommunityService) Unfavorite(userID uint64, communityName string) error {
	community, err := s.findByName(communityName)
	if err != nil {
		return err
	}
	return s.favRepo.Unfavorite(community.ID, userID)
}

func (s *CommunityService) findByName(name string) (*model.Community, error) {
	community, err := s.repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}
	return community, nil
}
