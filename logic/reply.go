package logic

import (
	"encoding/base64"
	"strconv"
	"subpost/dao/localcache"
	"subpost/dao/mysql"
	"subpost/dao/rebuild"
	"subpost/dao/redis"
	subpost "subpost/errors"
	"subpost/logger"
	"subpost/models"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// 游标对调用方不透明，内容是页首在快照中的偏移
func encodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, subpost.ErrInvalidCursor
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0, subpost.ErrInvalidCursor
	}
	return offset, nil
}

// 同一次调用只读一次 id 快照，翻页期间新插入的回复不会挤进当前页
func GetReplies(param *models.ParamReplyList) (*models.ReplyListDTO, error) {
	maxPageSize := viper.GetInt64("service.reply.max_page_size")
	// 页大小必须为正，否则翻页永远停在原地
	if param.PageSize <= 0 || param.PageSize > maxPageSize {
		return nil, subpost.ErrPageSizeExceeded
	}

	parentID := param.ParentID
	if parentID == 0 { // 0 表示根帖的直接回复
		parentID = param.RootID
	}

	postIDs, err := getChildPostIDs(param.RootID, parentID)
	if err != nil {
		return nil, errors.Wrap(err, "logic:GetReplies: getChildPostIDs")
	}

	offset := 0
	if param.Cursor != "" {
		if offset, err = decodeCursor(param.Cursor); err != nil {
			return nil, err
		}
	}
	if offset > len(postIDs) { // 越过快照末尾的游标视为无效
		return nil, subpost.ErrInvalidCursor
	}

	end := offset + int(param.PageSize)
	if end > len(postIDs) {
		end = len(postIDs)
	}

	replies, err := HydratePosts(postIDs[offset:end])
	if err != nil {
		return nil, errors.Wrap(err, "logic:GetReplies: HydratePosts")
	}

	list := &models.ReplyListDTO{
		Total:   len(postIDs),
		Replies: replies,
	}
	if end < len(postIDs) {
		list.NextCursor = encodeCursor(end)
	}
	return list, nil
}

// 优先读缓存，缓存缺失时重建，redis 不可用时直接回退 db
func getChildPostIDs(rootID, parentID int64) ([]int64, error) {
	postIDs, rebuilt, err := rebuild.RebuildTreeIndex(rootID, parentID)
	if err != nil {
		logger.Warnf("logic:getChildPostIDs: RebuildTreeIndex failed, reason: %v", err.Error())
		return mysql.SelectChildPostIDs(nil, rootID, parentID)
	}
	if rebuilt {
		return postIDs, nil
	}

	postIDs, err = redis.GetTreeIndexMembers(rootID, parentID)
	if err != nil {
		logger.Warnf("logic:getChildPostIDs: GetTreeIndexMembers failed, reason: %v", err.Error())
		return mysql.SelectChildPostIDs(nil, rootID, parentID)
	}
	return postIDs, nil
}

// 批量填充帖子详情，保持传入的顺序，已经被删除的 id 直接跳过
func HydratePosts(postIDs []int64) ([]*models.PostDTO, error) {
	dtos := make(map[int64]*models.PostDTO, len(postIDs))

	missed := make([]int64, 0, len(postIDs))
	for _, id := range postIDs {
		postCache, err := localcache.Get(getPostCacheKey(id))
		if err == nil {
			dtos[id] = postCache.(*models.PostDTO)
		} else {
			missed = append(missed, id)
		}
	}

	if len(missed) > 0 {
		posts, err := mysql.SelectPostsByPostIDs(nil, missed)
		if err != nil {
			return nil, errors.Wrap(err, "logic:HydratePosts: SelectPostsByPostIDs")
		}
		for i := range posts {
			dtos[posts[i].PostID] = models.NewPostDTO(&posts[i])
		}
	}

	res := make([]*models.PostDTO, 0, len(postIDs))
	for _, id := range postIDs {
		if dto, ok := dtos[id]; ok {
			res = append(res, dto)
		}
	}
	return res, nil
}
