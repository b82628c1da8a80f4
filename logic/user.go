package logic

import (
	"subpost/dao/mysql"
	"subpost/internal/utils"
	"subpost/models"

	subpost "subpost/errors"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func UserRegist(usr *models.User) (string, string, error) {
	// 查询用户是否存在
	exist, _, err := mysql.CheckUserIfExist(usr.UserName)
	if err != nil {
		return "", "", errors.Wrap(err, "logic:UserRegist: CheckUserIfExist")
	}
	if exist {
		return "", "", subpost.ErrUserExist
	}

	// 不存在，新建用户
	// 加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(usr.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", errors.Wrap(err, "logic:UserRegist: GenerateFromPassword")
	}
	usr.Password = string(hashedPassword)

	// 创建 user_id
	usr.UserID = utils.GenSnowflakeID()

	// 持久化
	if err := mysql.InsertUser(usr); err != nil {
		return "", "", errors.Wrap(err, "logic:UserRegist: InsertUser")
	}

	return genTokenHelper(usr.UserID)
}

func UserLogin(usr *models.User) (string, string, error) {
	// 判断用户是否存在
	exist, _, err := mysql.CheckUserIfExist(usr.UserName)
	if err != nil {
		return "", "", errors.Wrap(err, "logic:UserLogin: CheckUserIfExist")
	}
	if !exist {
		return "", "", subpost.ErrUserNotExist
	}

	// 查询、解析密码
	_usr, err := mysql.SelectUserByName(usr.UserName)
	if err != nil {
		return "", "", err
	}

	// 验证密码一致性
	if err := bcrypt.CompareHashAndPassword([]byte(_usr.Password), []byte(usr.Password)); err != nil {
		return "", "", subpost.ErrWrongPassword
	}

	usr.UserID = _usr.UserID

	// 刷新 access_token、refresh_token 并返回
	access_token, refresh_token, err := genTokenHelper(_usr.UserID)
	return access_token, refresh_token, errors.Wrap(err, "logic:UserLogin: genTokenHelper")
}

func UserGetInfo(userID int64) (*models.UserDTO, error) {
	user, err := mysql.SelectUserByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subpost.ErrUserNotExist
		}
		return nil, errors.Wrap(err, "logic:UserGetInfo: SelectUserByUserID")
	}

	return &models.UserDTO{
		UserID:   userID,
		UserName: user.UserName,
	}, nil
}
