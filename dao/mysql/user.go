package mysql

import (
	"subpost/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func InsertUser(usr *models.User) error {
	res := db.Create(usr)
	return errors.Wrap(res.Error, "mysql: InsertUser failed")
}

func SelectUserByName(username string) (*models.User, error) {
	usr := new(models.User)
	res := db.Model(&models.User{}).Where("user_name = ?", username).Take(usr)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectUserByName failed")
	}
	return usr, nil
}

func SelectUserByUserID(userID int64) (*models.User, error) {
	usr := new(models.User)
	res := db.Model(&models.User{}).Where("user_id = ?", userID).Take(usr)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectUserByUserID failed")
	}
	return usr, nil
}

func CheckUserIfExist(username string) (bool, int64, error) {
	usr := new(models.User)
	res := db.Model(&models.User{}).Where("user_name = ?", username).Take(usr)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return false, 0, nil
		}
		return false, 0, errors.Wrap(res.Error, "mysql: CheckUserIfExist failed")
	}
	return true, usr.UserID, nil
}
