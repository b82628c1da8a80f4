package logic

import (
	"subpost/dao/mysql"
	subpost "subpost/errors"
	"subpost/internal/utils"
	"subpost/models"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

func CreateSpace(param *models.ParamSpaceCreate, userID int64) (*models.SpaceDTO, error) {
	if err := checkHandle(param.Handle); err != nil {
		return nil, err
	}

	exist, err := mysql.CheckSpaceHandleIfExist(nil, param.Handle)
	if err != nil {
		return nil, errors.Wrap(err, "logic:CreateSpace: CheckSpaceHandleIfExist")
	}
	if exist {
		return nil, subpost.ErrSpaceHandleExist
	}

	space := &models.Space{
		SpaceID:    utils.GenSnowflakeID(),
		OwnerID:    userID,
		Handle:     param.Handle,
		ContentRef: param.ContentRef,
	}
	if err := mysql.CreateSpace(nil, space); err != nil {
		// handle 有唯一索引，并发创建时以 db 为准
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, subpost.ErrSpaceHandleExist
		}
		return nil, errors.Wrap(err, "logic:CreateSpace: CreateSpace")
	}

	return newSpaceDTO(space), nil
}

func UpdateSpace(param *models.ParamSpaceUpdate, userID int64) error {
	space, err := mysql.SelectSpaceBySpaceID(nil, param.SpaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return subpost.ErrNoSuchSpace
		}
		return errors.Wrap(err, "logic:UpdateSpace: SelectSpaceBySpaceID")
	}
	if space.OwnerID != userID {
		return subpost.ErrForbidden
	}

	values := make(map[string]any, 3)
	if param.Handle != "" && param.Handle != space.Handle {
		if err := checkHandle(param.Handle); err != nil {
			return err
		}
		exist, err := mysql.CheckSpaceHandleIfExist(nil, param.Handle)
		if err != nil {
			return errors.Wrap(err, "logic:UpdateSpace: CheckSpaceHandleIfExist")
		}
		if exist {
			return subpost.ErrSpaceHandleExist
		}
		values["handle"] = param.Handle
	}
	if param.ContentRef != "" {
		values["content_ref"] = param.ContentRef
	}
	if param.Hidden != nil {
		values["hidden"] = *param.Hidden
	}
	if len(values) == 0 { // 没有任何变化
		return nil
	}

	err = mysql.UpdateSpace(nil, param.SpaceID, values)
	return errors.Wrap(err, "logic:UpdateSpace: UpdateSpace")
}

func GetSpaceDetailByID(spaceID int64) (*models.SpaceDTO, error) {
	space, err := mysql.SelectSpaceBySpaceID(nil, spaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subpost.ErrNoSuchSpace
		}
		return nil, errors.Wrap(err, "logic:GetSpaceDetailByID: SelectSpaceBySpaceID")
	}
	return newSpaceDTO(space), nil
}

func GetSpaceList(param *models.ParamSpaceList) (*models.SpaceListDTO, error) {
	start := (param.PageNum - 1) * param.PageSize
	spaces, err := mysql.SelectSpaceList(nil, start, param.PageSize)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "logic:GetSpaceList: SelectSpaceList")
	}

	// Total 为全表数量，调用方靠它计算总页数
	total, err := mysql.CountSpaces(nil)
	if err != nil {
		return nil, errors.Wrap(err, "logic:GetSpaceList: CountSpaces")
	}

	list := &models.SpaceListDTO{
		Total:  int(total),
		Spaces: make([]*models.SpaceDTO, 0, len(spaces)),
	}
	for i := range spaces {
		list.Spaces = append(list.Spaces, newSpaceDTO(&spaces[i]))
	}
	return list, nil
}

// handle 只允许小写字母、数字、下划线，长度由配置约束
func checkHandle(handle string) error {
	minLen := viper.GetInt("service.space.min_handle_len")
	maxLen := viper.GetInt("service.space.max_handle_len")
	if len(handle) < minLen || len(handle) > maxLen {
		return subpost.ErrInvalidHandle
	}
	for _, c := range handle {
		if !utils.IsValidHandleChar(c) {
			return subpost.ErrInvalidHandle
		}
	}
	return nil
}

func newSpaceDTO(space *models.Space) *models.SpaceDTO {
	return &models.SpaceDTO{
		SpaceID:          space.SpaceID,
		OwnerID:          space.OwnerID,
		Handle:           space.Handle,
		ContentRef:       space.ContentRef,
		Hidden:           space.Hidden,
		PostsCount:       space.PostsCount,
		HiddenPostsCount: space.HiddenPostsCount,
		Score:            space.Score,
		CreatedAt:        space.CreatedAt,
	}
}
