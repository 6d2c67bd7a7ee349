package errors

import "errors"

// ErrStoreUnavailable 存储层不可达（连接、查询或事务失败）
var ErrStoreUnavailable = errors.New("roster store unavailable")
