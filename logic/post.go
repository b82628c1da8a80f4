package logic

import (
	"fmt"
	"strconv"
	"subpost/algorithm"
	"subpost/dao/localcache"
	"subpost/dao/mysql"
	"subpost/dao/rebuild"
	"subpost/dao/redis"
	subpost "subpost/errors"
	"subpost/internal/utils"
	"subpost/logger"
	"subpost/models"
	"subpost/objects"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var postDetailGrp singleflight.Group

// 帖子创建后，extension（Kind 与引用字段）不可变，内容与可见性可变
func CreateRegularPost(param *models.ParamPostCreate, userID int64) (*models.PostDTO, error) {
	if _, err := mysql.SelectSpaceBySpaceID(nil, param.SpaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subpost.ErrNoSuchSpace
		}
		return nil, errors.Wrap(err, "logic:CreateRegularPost: SelectSpaceBySpaceID")
	}

	post := &models.Post{
		PostID:     utils.GenSnowflakeID(),
		Kind:       models.KindRegular,
		SpaceID:    param.SpaceID,
		AuthorID:   userID,
		ContentRef: param.ContentRef,
	}

	tx := mysql.GetDB().Begin()
	if err := mysql.CreatePost(tx, post); err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateRegularPost: CreatePost")
	}
	if err := mysql.IncrSpaceCounterField(tx, "posts_count", param.SpaceID, 1); err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateRegularPost: IncrSpaceCounterField(posts_count)")
	}
	tx.Commit()

	// 普通帖子进入时间、分数 zset，供热榜与投票使用
	if err := redis.SetPostTime(post.PostID); err != nil {
		logger.Warnf("logic:CreateRegularPost: SetPostTime failed, reason: %v", err.Error())
	}
	score := algorithm.PostScore(time.Now().Unix(), 0)
	if err := redis.SetPostScore(post.PostID, score); err != nil {
		logger.Warnf("logic:CreateRegularPost: SetPostScore failed, reason: %v", err.Error())
	}

	return models.NewPostDTO(post), nil
}

func CreateReply(param *models.ParamReplyCreate, userID int64) (*models.PostDTO, error) {
	// 根节点必须是普通帖子
	root, err := mysql.SelectPostByPostID(nil, param.RootID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subpost.ErrInvalidParent
		}
		return nil, errors.Wrap(err, "logic:CreateReply: SelectPostByPostID(root)")
	}
	if root.Kind != models.KindRegular {
		return nil, subpost.ErrInvalidParent
	}

	// 直接回复根帖时，parent_key 的 parent 取根帖自身
	parentID := param.ParentID
	if parentID == 0 {
		parentID = param.RootID
	}
	if parentID != param.RootID {
		parent, err := mysql.SelectPostByPostID(nil, parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, subpost.ErrInvalidParent
			}
			return nil, errors.Wrap(err, "logic:CreateReply: SelectPostByPostID(parent)")
		}
		// 父节点必须是同一棵树上的回复
		if parent.Kind != models.KindComment || parent.RootID != param.RootID {
			return nil, subpost.ErrInvalidParent
		}
	}

	post := &models.Post{
		PostID:     utils.GenSnowflakeID(),
		Kind:       models.KindComment,
		RootID:     param.RootID,
		ParentID:   parentID,
		AuthorID:   userID,
		ContentRef: param.ContentRef,
	}

	// 帖子行、索引行、祖先计数在同一个事务中落库，整体成功或失败
	tx := mysql.GetDB().Begin()
	if err := mysql.CreatePost(tx, post); err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateReply: CreatePost")
	}

	// 先更新祖先计数，拿到直接父节点的行锁，再分配 seq：
	// 并发回复同一个父节点时，计数行锁把 COUNT 串行化，seq 不会重复
	ancestorIDs, err := collectAncestorIDs(tx, post)
	if err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateReply: collectAncestorIDs")
	}
	if err := applyCounterDeltas(tx, ReplyCreatedDeltas(ancestorIDs)); err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateReply: applyCounterDeltas")
	}

	seq, err := mysql.CountReplyIndex(tx, param.RootID, parentID)
	if err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateReply: CountReplyIndex")
	}
	index := &models.ReplyIndex{
		RootID:   param.RootID,
		ParentID: parentID,
		PostID:   post.PostID,
		Seq:      seq + 1,
	}
	if err := mysql.CreateReplyIndex(tx, index); err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateReply: CreateReplyIndex")
	}
	tx.Commit()

	// 写缓存前尝试 rebuild 一下，确保缓存中有完整的 post_id
	_, rebuilt, err := rebuild.RebuildTreeIndex(param.RootID, parentID)
	if err != nil {
		// 重建失败，如果继续写缓存，可能会造成缓存中不具有完整的 post_id，拒绝服务
		return nil, errors.Wrap(err, "logic:CreateReply: RebuildTreeIndex")
	}
	if !rebuilt { // 重建时已经包含了刚落库的索引行
		if err := redis.AddTreeIndexMembers(param.RootID, parentID, []int64{post.PostID}, []int{index.Seq}); err != nil {
			logger.Warnf("logic:CreateReply: AddTreeIndexMembers failed, reason: %v", err.Error())
		}
	}

	return models.NewPostDTO(post), nil
}

func CreateSharedPost(param *models.ParamPostShare, userID int64) (*models.PostDTO, error) {
	original, err := mysql.SelectPostByPostID(nil, param.OriginalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subpost.ErrInvalidParent
		}
		return nil, errors.Wrap(err, "logic:CreateSharedPost: SelectPostByPostID(original)")
	}
	// 不允许转发一个转发，引用链最多一层
	if original.Kind == models.KindShared {
		return nil, subpost.ErrInvalidParent
	}

	post := &models.Post{
		PostID:     utils.GenSnowflakeID(),
		Kind:       models.KindShared,
		OriginalID: param.OriginalID,
		AuthorID:   userID,
		ContentRef: param.ContentRef,
	}

	tx := mysql.GetDB().Begin()
	if err := mysql.CreatePost(tx, post); err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateSharedPost: CreatePost")
	}
	if err := applyCounterDeltas(tx, PostSharedDeltas(param.OriginalID)); err != nil {
		tx.Rollback()
		return nil, errors.Wrap(err, "logic:CreateSharedPost: applyCounterDeltas")
	}
	tx.Commit()

	return models.NewPostDTO(post), nil
}

func EditPostContent(param *models.ParamPostEdit, userID int64) error {
	post, err := mysql.SelectPostByPostID(nil, param.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return subpost.ErrNotFound
		}
		return errors.Wrap(err, "logic:EditPostContent: SelectPostByPostID")
	}
	if post.AuthorID != userID {
		return subpost.ErrForbidden
	}

	if err := mysql.UpdatePostContentRef(nil, param.PostID, param.ContentRef); err != nil {
		return errors.Wrap(err, "logic:EditPostContent: UpdatePostContentRef")
	}

	// 本地缓存中可能有旧的 DTO，直接失效
	localcache.Remove(getPostCacheKey(param.PostID))
	return nil
}

// 可见性变化需要同步调整计数，重复设置同一状态是幂等的
func SetPostHidden(param *models.ParamPostHidden, userID int64) error {
	post, err := mysql.SelectPostByPostID(nil, param.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return subpost.ErrNotFound
		}
		return errors.Wrap(err, "logic:SetPostHidden: SelectPostByPostID")
	}
	if post.AuthorID != userID {
		return subpost.ErrForbidden
	}

	hidden := *param.Hidden

	// 幂等判定必须在事务内完成：条件更新拿到行锁后没有翻转，说明
	// 目标状态已经生效（可能被并发的相同请求抢先），此时计数不能再动
	tx := mysql.GetDB().Begin()
	changed, err := mysql.UpdatePostHidden(tx, param.PostID, hidden)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "logic:SetPostHidden: UpdatePostHidden")
	}
	if !changed {
		tx.Rollback()
		return nil
	}

	switch post.Kind {
	case models.KindRegular:
		offset := 1
		if !hidden {
			offset = -1
		}
		if err := mysql.IncrSpaceCounterField(tx, "hidden_posts_count", post.SpaceID, offset); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "logic:SetPostHidden: IncrSpaceCounterField(hidden_posts_count)")
		}
	case models.KindComment:
		ancestorIDs, err := collectAncestorIDs(tx, post)
		if err != nil {
			tx.Rollback()
			return errors.Wrap(err, "logic:SetPostHidden: collectAncestorIDs")
		}
		if err := applyCounterDeltas(tx, HiddenChangedDeltas(ancestorIDs, hidden)); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "logic:SetPostHidden: applyCounterDeltas")
		}
	case models.KindShared:
		// 转发的可见性不影响任何计数
	default:
		tx.Rollback()
		return errors.Wrap(subpost.ErrInternal, "logic:SetPostHidden: unknown post kind")
	}
	tx.Commit()

	localcache.Remove(getPostCacheKey(param.PostID))
	return nil
}

func GetPostDetailByID(id int64, needIncrView bool) (detail *models.PostDTO, err error) {
	if needIncrView {
		newMember, err := localcache.IncrView(objects.ObjPost, id, 1)
		if err != nil {
			logger.Warnf("logic:GetPostDetailByID: IncrView failed(post)")
		} else if newMember { // 如果是新创建的 member，记录创建时间，用于统计一个时间段的 view
			if err := localcache.SetViewCreateTime(objects.ObjPost, id, time.Now().Unix()); err != nil {
				logger.Warnf("logic:GetPostDetailByID: SetViewCreateTime(post) failed")
				localcache.IncrView(objects.ObjPost, id, -1)
			} else if err := redis.SetObjectViewTime(getPostCacheKey(id), time.Now().Unix()); err != nil {
				logger.Warnf("logic:GetPostDetailByID: SetObjectViewTime(post) failed")
			}
		}
		if err := redis.IncrPostViews(id, 1); err != nil {
			logger.Warnf("logic:GetPostDetailByID: IncrPostViews failed")
		}
	}

	cacheKey := getPostCacheKey(id)
	postCache, err := localcache.Get(cacheKey)
	if err == nil { // 本地缓存命中
		return postCache.(*models.PostDTO), nil
	}

	timeout := time.Second * time.Duration(viper.GetInt("service.timeout"))
	rps := viper.GetInt("service.rps")
	interval := time.Second / time.Duration(rps)
	_detail, err := utils.SfDoWithTimeout(&postDetailGrp, strconv.FormatInt(id, 10), timeout, interval, func() (any, error) {
		post, err := mysql.SelectPostByPostID(nil, id)
		if err != nil {
			return nil, err
		}
		return models.NewPostDTO(post), nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subpost.ErrNotFound
		}
		return nil, errors.Wrap(err, "logic:GetPostDetailByID: SelectPostByPostID")
	}
	detail = _detail.(*models.PostDTO)

	// 活跃期帖子的票数以 redis 为准
	up, down, err := redis.GetPostVoteNums(id)
	if err == nil {
		detail.UpvotesCount = int(up)
		detail.DownvotesCount = int(down)
	}

	return detail, nil
}

func getPostCacheKey(postID int64) string {
	return fmt.Sprintf("%v_%v", objects.ObjPost, postID)
}
