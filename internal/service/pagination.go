package service

const (
	maxPageSize             = 100
	defaultSessionPageSize  = 10
	defaultLedgerPageSize   = 20
	defaultQuestionPageSize = 20
)

type pageRequest struct {
	Page     int
	PageSize int
}

func newPageRequest(page, pageSize, defaultSize int) pageRequest {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageRequest{Page: page, PageSize: pageSize}
}

func (p pageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p pageRequest) Pages(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
}
