package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"Hive_Community/internal/config"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc       *service.CommunityService
	inviteSvc *service.InviteService
	uploadDir string
}

// CommunityCreateReq 同时支持 JSON 与 multipart 表单
type CommunityCreateReq struct {
	Name           string   `json:"name" form:"name"`
	Type           string   `json:"type" form:"type"`
	Title          string   `json:"title" form:"title"`
	Color          string   `json:"color" form:"color"`
	Categories     []string `json:"categories" form:"categories"`
	Description    string   `json:"description" form:"description"`
	Rules          string   `json:"rules" form:"rules"`
	UserAdjective  string   `json:"user_adjective" form:"user_adjective"`
	UsersAdjective string   `json:"users_adjective" form:"users_adjective"`
}

type NameCheckReq struct {
	Name string `json:"name" form:"name"`
}

type InviteReq struct {
	Email string `json:"email" binding:"required,email"`
}

func NewCommunityHandler(cfg *config.Config) *CommunityHandler {
	return &CommunityHandler{
		svc:       service.NewCommunityService(cfg),
		inviteSvc: service.NewInviteService(cfg),
		uploadDir: cfg.UploadDir,
	}
}

// Create PUT /communities：201 成功，400 按字段返回错误
func (h *CommunityHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CommunityCreateReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	in := &service.CreateCommunityInput{
		Name:           req.Name,
		Type:           req.Type,
		Title:          req.Title,
		Color:          req.Color,
		Categories:     req.Categories,
		Description:    req.Description,
		Rules:          req.Rules,
		UserAdjective:  req.UserAdjective,
		UsersAdjective: req.UsersAdjective,
	}

	// multipart 才有头像/封面文件，保存后只记路径。
	// 名字先过校验再落盘，防止用它拼出 UploadDir 之外的路径
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") && h.svc.ValidName(req.Name) {
		if file, err := c.FormFile("avatar"); err == nil {
			dst := filepath.Join(h.uploadDir, req.Name+"_avatar"+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, dst); err == nil {
				in.Avatar = dst
			}
		}
		if file, err := c.FormFile("cover"); err == nil {
			dst := filepath.Join(h.uploadDir, req.Name+"_cover"+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, dst); err == nil {
				in.Cover = dst
			}
		}
	}

	community, fieldErrs, err := h.svc.Create(userID, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
		return
	}
	if fieldErrs.Any() {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	c.JSON(http.StatusCreated, community)
}

// NameCheck POST /community-name-check：可用返回 202，否则 400 带 name 错误
func (h *CommunityHandler) NameCheck(c *gin.Context) {
	var req NameCheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, pkg.FieldErrors{"name": {"name is required"}})
		return
	}

	fieldErrs, err := h.svc.CheckName(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "name check failed"})
		return
	}
	if fieldErrs.Any() {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"msg": "name available"})
}

// Joined GET /joined-communities
func (h *CommunityHandler) Joined(c *gin.Context) {
	list, err := h.svc.Joined(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Favorites GET /favorite-communities
func (h *CommunityHandler) Favorites(c *gin.Context) {
	list, err := h.svc.Favorites(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Show GET /communities/:name，带上当前用户的成员/收藏状态
func (h *CommunityHandler) Show(c *gin.Context) {
	detail, err := h.svc.Detail(currentUserID(c), c.Param("name"))
	if err != nil {
		respondCommunityErr(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *CommunityHandler) Join(c *gin.Context) {
	if err := h.svc.Join(currentUserID(c), c.Param("name")); err != nil {
		respondCommunityErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	if err := h.svc.Leave(currentUserID(c), c.Param("name")); err != nil {
		respondCommunityErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) Favorite(c *gin.Context) {
	if err := h.svc.Favorite(currentUserID(c), c.Param("name")); err != nil {
		respondCommunityErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) Unfavorite(c *gin.Context) {
	if err := h.svc.Unfavorite(currentUserID(c), c.Param("name")); err != nil {
		respondCommunityErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Invite POST /communities/:name/invites
func (h *CommunityHandler) Invite(c *gin.Context) {
	var req InviteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, pkg.FieldErrors{"email": {"a valid email is required"}})
		return
	}

	if err := h.inviteSvc.Invite(currentUserID(c), c.Param("name"), req.Email); err != nil {
		respondCommunityErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "invitation sent"})
}

func currentUserID(c *gin.Context) uint64 {
	userIDAny, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := userIDAny.(uint64)
	return userID
}

func respondCommunityErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommunityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrNotMember):
		c.JSON(http.StatusBadRequest, pkg.FieldErrors{"community": {"must join the community first"}})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
	}
}
