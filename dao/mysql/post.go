package mysql

import (
	"fmt"
	subpost "subpost/errors"
	"subpost/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreatePost(tx *gorm.DB, post *models.Post) error {
	useDB := getUseDB(tx)

	res := useDB.Create(post)
	return errors.Wrap(res.Error, "mysql: CreatePost failed")
}

func SelectPostByPostID(tx *gorm.DB, postID int64) (*models.Post, error) {
	useDB := getUseDB(tx)

	post := new(models.Post)
	res := useDB.Model(&models.Post{}).Where("post_id = ?", postID).Take(post)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mysql: SelectPostByPostID failed")
	}
	return post, nil
}

// 按传入顺序无关地批量查询，调用方负责按输入序重排
func SelectPostsByPostIDs(tx *gorm.DB, postIDs []int64) ([]models.Post, error) {
	useDB := getUseDB(tx)

	posts := make([]models.Post, 0, len(postIDs))
	res := useDB.Model(&models.Post{}).Where("post_id in ?", postIDs).Find(&posts)
	return posts, errors.Wrap(res.Error, "mysql: SelectPostsByPostIDs failed")
}

func UpdatePostContentRef(tx *gorm.DB, postID int64, contentRef string) error {
	useDB := getUseDB(tx)

	res := useDB.Model(&models.Post{}).Where("post_id = ?", postID).Update("content_ref", contentRef)
	return errors.Wrap(res.Error, "mysql: UpdatePostContentRef failed")
}

// 条件更新：只有状态确实发生翻转才算生效，返回值表示是否翻转
// 并发下依赖行锁串行，重复请求在这里判定为无操作
func UpdatePostHidden(tx *gorm.DB, postID int64, hidden bool) (bool, error) {
	useDB := getUseDB(tx)

	res := useDB.Model(&models.Post{}).
		Where("post_id = ? AND hidden <> ?", postID, hidden).
		Update("hidden", hidden)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "mysql: UpdatePostHidden failed")
	}
	return res.RowsAffected > 0, nil
}

func UpdatePostScore(tx *gorm.DB, postID, score int64) error {
	useDB := getUseDB(tx)

	res := useDB.Model(&models.Post{}).Where("post_id = ?", postID).Update("score", score)
	return errors.Wrap(res.Error, "mysql: UpdatePostScore failed")
}

// 递增（递减）post 的某个计数字段
//
// 计数不允许为负：递减带下界保护，影响行数为 0 说明上游破坏了不变量
// （计数下溢或悬空的索引项），按内部一致性错误处理，不做静默截断
func IncrPostCounterField(tx *gorm.DB, field string, postID int64, offset int) error {
	if offset == 0 {
		return nil
	}
	useDB := getUseDB(tx)

	expr := fmt.Sprintf("%s + %d", field, offset)
	query := useDB.Model(&models.Post{}).Where("post_id = ?", postID)
	if offset < 0 {
		query = query.Where(fmt.Sprintf("%s >= ?", field), -offset)
	}
	res := query.Update(field, gorm.Expr(expr))
	if res.Error != nil {
		return errors.Wrap(res.Error, "mysql: IncrPostCounterField failed")
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(subpost.ErrInternal,
			fmt.Sprintf("mysql: IncrPostCounterField: counter invariant broken(field: %s, post_id: %d, offset: %d)", field, postID, offset))
	}
	return nil
}
