package dto

// PaginationInfo is the standard pagination envelope for list responses
type PaginationInfo struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ListResponse is the standard list envelope: data plus pagination
type ListResponse struct {
	Data       interface{}    `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// MessageResponse is a plain informational response
type MessageResponse struct {
	Message string `json:"message"`
}
