package mysql

import (
	"fmt"
	subpost "subpost/errors"
	"subpost/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateSpace(tx *gorm.DB, space *models.Space) error {
	useDB := getUseDB(tx)

	res := useDB.Create(space)
	return errors.Wrap(res.Error, "mysql: CreateSpace failed")
}

func SelectSpaceBySpaceID(tx *gorm.DB, spaceID int64) (*models.Space, error) {
	useDB := getUseDB(tx)

	space := new(models.Space)
	res := useDB.Model(&models.Space{}).Where("space_id = ?", spaceID).Take(space)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectSpaceBySpaceID failed")
	}
	return space, nil
}

func CheckSpaceHandleIfExist(tx *gorm.DB, handle string) (bool, error) {
	useDB := getUseDB(tx)

	var count int64
	res := useDB.Model(&models.Space{}).Where("handle = ?", handle).Count(&count)
	return count > 0, errors.Wrap(res.Error, "mysql: CheckSpaceHandleIfExist failed")
}

func CountSpaces(tx *gorm.DB) (int64, error) {
	useDB := getUseDB(tx)

	var count int64
	res := useDB.Model(&models.Space{}).Count(&count)
	return count, errors.Wrap(res.Error, "mysql: CountSpaces failed")
}

func SelectSpaceList(tx *gorm.DB, start, size int64) ([]models.Space, error) {
	useDB := getUseDB(tx)

	spaces := make([]models.Space, 0, size)
	res := useDB.Model(&models.Space{}).Order("space_id").Offset(int(start)).Limit(int(size)).Find(&spaces)
	return spaces, errors.Wrap(res.Error, "mysql: SelectSpaceList failed")
}

func UpdateSpace(tx *gorm.DB, spaceID int64, values map[string]any) error {
	useDB := getUseDB(tx)

	res := useDB.Model(&models.Space{}).Where("space_id = ?", spaceID).Updates(values)
	return errors.Wrap(res.Error, "mysql: UpdateSpace failed")
}

// 同 IncrPostCounterField，空间级计数的下界保护版本
func IncrSpaceCounterField(tx *gorm.DB, field string, spaceID int64, offset int) error {
	if offset == 0 {
		return nil
	}
	useDB := getUseDB(tx)

	expr := fmt.Sprintf("%s + %d", field, offset)
	query := useDB.Model(&models.Space{}).Where("space_id = ?", spaceID)
	if offset < 0 {
		query = query.Where(fmt.Sprintf("%s >= ?", field), -offset)
	}
	res := query.Update(field, gorm.Expr(expr))
	if res.Error != nil {
		return errors.Wrap(res.Error, "mysql: IncrSpaceCounterField failed")
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(subpost.ErrInternal,
			fmt.Sprintf("mysql: IncrSpaceCounterField: counter invariant broken(field: %s, space_id: %d, offset: %d)", field, spaceID, offset))
	}
	return nil
}
