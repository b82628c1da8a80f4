package kafka

import (
	"fmt"
	"subpost/dao/mysql"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetIncrPostCounterFieldUniqueKey(field string, postID int64) string {
	return fmt.Sprintf("incr_post_counter_%v_%v", field, postID)
}

func incrPostCounterField(tx *gorm.DB, field string, postID int64, offset int) (res Result) {
	res.UniqueKey = GetIncrPostCounterFieldUniqueKey(field, postID)

	if err := mysql.IncrPostCounterField(tx, field, postID, offset); err != nil {
		res.Err = errors.Wrap(err, "kafka:incrPostCounterField")
	}

	return
}
